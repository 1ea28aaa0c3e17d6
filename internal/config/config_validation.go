// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Each failing group is reported with its own sentinel error.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseHashType(cfg.App.DefaultHashType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.SaltLength < models.MinSaltLength {
		return fmt.Errorf("%w: salt length must be at least %d", ErrInvalidAppConfigs, models.MinSaltLength)
	}
	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.SecretsPath == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if dsn := cfg.Storage.Cloud.DSN; dsn != "" && CloudKind(dsn) == "" {
		return fmt.Errorf("%w: unsupported cloud DSN scheme", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Lockout.MaxRetries < 1 || cfg.Lockout.TimeoutLength < 1 {
		return ErrInvalidLockoutConfigs
	}

	if cfg.Storage.Cloud.DSN != "" && cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Cloud backend kinds returned by [CloudKind].
const (
	CloudPostgres = "postgres"
	CloudRedis    = "redis"
)

// CloudKind maps a cloud DSN to its backend kind by URL scheme, or "" when the
// scheme is not supported.
func CloudKind(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return CloudPostgres
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return CloudRedis
	default:
		return ""
	}
}
