// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed session handed out after a successful unlock.
//
// It embeds [jwt.RegisteredClaims]; the session identifier travels in the
// "jti" claim and the expiry in "exp".
type SessionToken struct {
	// Token is the parsed or freshly built JWT. Not serialized.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent to the client.
	SignedString string `json:"-"`
}

// SessionID returns the "jti" claim.
func (t *SessionToken) SessionID() string {
	return t.ID
}

// ExpiresIn returns the remaining lifetime relative to now, or zero when the
// token carries no expiry or has already expired.
func (t *SessionToken) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// String returns the compact JWS serialization.
func (t *SessionToken) String() string {
	return t.SignedString
}

// UnlockResult is the payload returned by a successful unlock.
type UnlockResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	// Migrated reports that the stored passcode was rehashed with the current
	// default algorithm during this unlock.
	Migrated bool `json:"migrated"`
}

// LockStatus describes the current lockout for API consumers.
type LockStatus struct {
	Locked       bool   `json:"locked"`
	Remaining    string `json:"remaining,omitempty"`
	RemainingSec int64  `json:"remaining_sec,omitempty"`
	FailureCount int    `json:"failure_count"`
}
