// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Passcode and salt constraints.
const (
	// PasscodeSize is the number of digits of the application passcode.
	PasscodeSize = 6

	// MinSaltLength is the shortest salt accepted when (re)hashing a passcode.
	MinSaltLength = 4

	// DefaultSaltLength is used when neither the caller nor an existing record
	// specifies a salt length.
	DefaultSaltLength = 12
)

// Credential is the persisted passcode record.
//
// The whole record is written under a single secret-store key, so the hash,
// the salt and the algorithm are always replaced together.
type Credential struct {
	// HashedSecret is Digest(HashType, Salt+passcode).
	HashedSecret string `json:"password"`

	// Salt is a random alphanumeric string generated on every password change.
	Salt string `json:"salt"`

	// HashType is the algorithm HashedSecret was computed with.
	HashType HashType `json:"hash_type"`

	// SaltLength is the length Salt was generated with.
	SaltLength int `json:"salt_length"`
}
