// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrLocked is returned by Unlock while a lockout is in effect.
	ErrLocked = errors.New("passcode entry locked")
	// ErrWrongPasscode is returned by Unlock when the passcode does not verify.
	ErrWrongPasscode = errors.New("wrong passcode")
	// ErrNoPasscode is returned by Unlock before a passcode was ever set.
	ErrNoPasscode = errors.New("no passcode set")
	// ErrPasscodeNotChanged is returned when the credential store refused a
	// passcode change (bad current passcode or store failure).
	ErrPasscodeNotChanged = errors.New("passcode not changed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrSettingsUnavailable wraps local settings replica failures.
	ErrSettingsUnavailable = errors.New("settings unavailable")
	// ErrCloudNotConfigured is returned by sync operations when no cloud
	// replica is available.
	ErrCloudNotConfigured = errors.New("cloud settings replica is not configured")
	// ErrCloudUnavailable wraps cloud replica failures during sync operations.
	ErrCloudUnavailable = errors.New("cloud settings replica unavailable")
	// ErrUnknownSetting is returned for keys outside the user settings set.
	ErrUnknownSetting = errors.New("unknown setting")
)
