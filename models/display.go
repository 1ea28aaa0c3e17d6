// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DisplaySlots is the number of decoys shown next to the real PIN when
// randomized display is on.
const DisplaySlots = 4

// DisplayConfig selects how a PIN is rendered.
type DisplayConfig struct {
	Reverse   bool `json:"reverse"`
	Randomize bool `json:"randomize"`
}

// DisplayResult is the ordered list of codes to render. RealIndex points at
// the entry derived from the real PIN.
type DisplayResult struct {
	Codes     []string `json:"codes"`
	RealIndex int      `json:"-"`
}

// AccessResult is returned when card digits are entered on the access pad.
type AccessResult struct {
	Digits  string        `json:"digits"`
	Name    *string       `json:"name,omitempty"`
	Display DisplayResult `json:"display"`
}
