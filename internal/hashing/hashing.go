// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hashing maps a [models.HashType] and an input string to a digest
// string. All functions are pure and safe for concurrent use.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// Argon2id parameters. The per-record random salt is already part of the
// input, so argon2Salt only separates this use of the KDF from others.
const (
	argon2Time    uint32 = 2
	argon2Memory  uint32 = 19 * 1024 // 19 MiB
	argon2Threads uint8  = 1
	argon2KeyLen  uint32 = 32
)

var argon2Salt = []byte("go-pin-keeper/passcode")

// Digest returns the digest of input under alg as lowercase hex.
//
// [models.HashClear] returns input unchanged. An unsupported alg yields an
// empty string; callers validate alg with [models.HashType.Valid] first.
func Digest(alg models.HashType, input string) string {
	data := []byte(input)

	switch alg {
	case models.HashClear:
		return input
	case models.HashMD5:
		sum := md5.Sum(data)
		return hex.EncodeToString(sum[:])
	case models.HashSHA1:
		sum := sha1.Sum(data)
		return hex.EncodeToString(sum[:])
	case models.HashSHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	case models.HashSHA512:
		sum := sha512.Sum512(data)
		return hex.EncodeToString(sum[:])
	case models.HashArgon2ID:
		key := argon2.IDKey(data, argon2Salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
		return hex.EncodeToString(key)
	default:
		return ""
	}
}
