// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Card field sizes.
const (
	// DigitsSize is the number of trailing card digits identifying a card.
	DigitsSize = 4

	// PinSize is the length of a card PIN and of every decoy PIN.
	PinSize = 4

	// DecoyCount is the number of decoys generated per card: one for every
	// wrong final digit.
	DecoyCount = 9
)

// Card colors offered by the client.
const (
	ColorDarkBlue  = "#3b556e"
	ColorLightBlue = "#4fc1db"
	ColorRed       = "#df3512"
	ColorGold      = "#eca11f"
	ColorSilver    = "#aaa9ad"
	ColorBlack     = "#231f20"
	ColorGreen     = "#629f86"
)

// Card is a stored PIN entry.
//
// DecoyPINs is generated once when the card is created and persisted with it;
// updates never regenerate it, so the same wrong final digit always resolves
// to the same decoy.
type Card struct {
	ID           uuid.UUID  `json:"id"`
	Digits       string     `json:"digits"`
	PIN          string     `json:"pin,omitempty"`
	DecoyPINs    []string   `json:"-"`
	Name         *string    `json:"name,omitempty"`
	Order        int        `json:"order"`
	Favorite     bool       `json:"favorite"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	Color        string     `json:"color"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CardUpdate carries optional card changes; nil fields are left untouched.
type CardUpdate struct {
	Digits       *string    `json:"digits,omitempty"`
	PIN          *string    `json:"pin,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Order        *int       `json:"order,omitempty"`
	Favorite     *bool      `json:"favorite,omitempty"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	Color        *string    `json:"color,omitempty"`
}

// FavoriteFilter restricts card listings by the favorite flag.
type FavoriteFilter int

const (
	FavoriteAll FavoriteFilter = iota
	FavoriteOnly
	FavoriteExclude
)

// CardSortKey selects the listing order. Order sorts ascending, LastAccessed
// sorts most recent first.
type CardSortKey int

const (
	SortNone CardSortKey = iota
	SortOrder
	SortLastAccessed
)

// CardFilter narrows a card listing.
type CardFilter struct {
	// Search matches case-insensitively against name and digits.
	Search   string
	Favorite FavoriteFilter
	SortBy   CardSortKey
}
