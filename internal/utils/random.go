// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	digitAlphabet        = "0123456789"
	alphanumericAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrInvalidLength is returned when a negative length is requested.
var ErrInvalidLength = errors.New("invalid length")

// RandomAlphanumeric returns n characters drawn uniformly from [a-zA-Z0-9].
func RandomAlphanumeric(n int) (string, error) {
	return randomString(alphanumericAlphabet, n)
}

// RandomDigits returns n decimal digits drawn uniformly, leading zeros
// included.
func RandomDigits(n int) (string, error) {
	return randomString(digitAlphabet, n)
}

func randomString(alphabet string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	out := make([]byte, n)
	for i := range out {
		j, err := RandomInt(len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[j]
	}
	return string(out), nil
}

// RandomInt returns a uniform integer in [0, n). n must be positive.
func RandomInt(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

// Shuffle permutes s in place with a Fisher–Yates shuffle driven by
// crypto/rand, so every permutation is equally likely.
func Shuffle[T any](s []T) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := RandomInt(i + 1)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
