// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// HashType identifies the digest used to store the application passcode.
//
// The set is closed: only the constants below are valid. [HashClear] stores the
// salted passcode as-is and exists only so records written before hashing was
// introduced stay verifiable; such records are upgraded on the next successful
// unlock.
type HashType string

const (
	HashClear    HashType = "clear"
	HashMD5      HashType = "md5"
	HashSHA1     HashType = "sha1"
	HashSHA256   HashType = "sha256"
	HashSHA512   HashType = "sha512"
	HashArgon2ID HashType = "argon2id"
)

// HashTypes lists every supported hash type in declaration order.
var HashTypes = []HashType{HashClear, HashMD5, HashSHA1, HashSHA256, HashSHA512, HashArgon2ID}

// Valid reports whether h is one of the supported hash types.
func (h HashType) Valid() bool {
	for _, t := range HashTypes {
		if h == t {
			return true
		}
	}
	return false
}

func (h HashType) String() string {
	return string(h)
}

// ParseHashType converts a case-insensitive name into a [HashType].
func ParseHashType(s string) (HashType, error) {
	h := HashType(strings.ToLower(strings.TrimSpace(s)))
	if !h.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHashType, s)
	}
	return h, nil
}
