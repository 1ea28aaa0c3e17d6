// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Defaults used when the corresponding setting has never been written.
const (
	DefaultMaxRetries    = 3
	DefaultTimeoutLength = 1 // minutes
)

// LockoutState is the persisted failed-attempt bookkeeping.
//
// A LockExpiry in the past means "expired, pending cleanup", which is distinct
// from a nil LockExpiry ("no lock").
type LockoutState struct {
	FailureCount int        `json:"failure_count"`
	LockExpiry   *time.Time `json:"lock_expiry,omitempty"`
}
