// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrUnknownHashType is returned by [ParseHashType] for names outside the
	// closed set of supported algorithms.
	ErrUnknownHashType = errors.New("unknown hash type")

	// ErrUnknownSettingKind is returned when a serialized setting carries a
	// kind tag that is not part of [SettingKind].
	ErrUnknownSettingKind = errors.New("unknown setting kind")
)
