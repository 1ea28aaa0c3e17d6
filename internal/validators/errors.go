// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDigits    = errors.New("card digits must be exactly 4 decimal digits")
	ErrInvalidPIN       = errors.New("pin must be exactly 4 decimal digits")
	ErrInvalidOrder     = errors.New("order must not be negative")
	ErrInvalidColor     = errors.New("unknown card color")
	ErrInvalidDecoys    = errors.New("decoy pins must match the pin format")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidPasscode  = errors.New("passcode must be exactly 6 decimal digits")
)
