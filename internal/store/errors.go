// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the root of every "absent key / row" error below.
	ErrNotFound = errors.New("not found")

	// ErrSecretNotFound is returned by [SecretStore.Get] for absent keys.
	ErrSecretNotFound = fmt.Errorf("secret %w", ErrNotFound)

	// ErrSettingNotFound is returned by [SettingsBackend.Get] for absent keys.
	ErrSettingNotFound = fmt.Errorf("setting %w", ErrNotFound)

	// ErrCardNotFound is returned when no card has the requested digits.
	ErrCardNotFound = fmt.Errorf("card %w", ErrNotFound)

	// ErrCardDigitsTaken is returned when a card with the same digits already
	// exists.
	ErrCardDigitsTaken = errors.New("card digits already exist")

	// ErrStoreUnavailable marks transient backend failures (connection loss,
	// server shutting down). The operation may succeed if retried later.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrCorruptedValue is returned when a stored value cannot be decoded.
	ErrCorruptedValue = errors.New("stored value is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
