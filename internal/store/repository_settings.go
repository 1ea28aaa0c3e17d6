// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// settingsRepository is the SQL implementation of [SettingsBackend]. It backs
// both the local SQLite replica and the PostgreSQL cloud replica; the
// dialect-specific error classification lives in [DB].
type settingsRepository struct {
	db     *DB
	name   string
	logger *logger.Logger
}

// NewLocalSettingsRepository returns the SQLite-backed local replica.
func NewLocalSettingsRepository(db *DB, log *logger.Logger) SettingsBackend {
	log.Debug().Msg("creating local settings repository")
	return &settingsRepository{db: db, name: "local", logger: log}
}

// NewPostgresSettingsRepository returns the PostgreSQL-backed cloud replica.
// Connection failures are reported wrapped in [ErrStoreUnavailable].
func NewPostgresSettingsRepository(db *DB, log *logger.Logger) SettingsBackend {
	log.Debug().Msg("creating postgres settings repository")
	return &settingsRepository{db: db, name: "cloud-postgres", logger: log}
}

func (r *settingsRepository) Name() string {
	return r.name
}

func (r *settingsRepository) Get(ctx context.Context, key string) (models.SettingValue, error) {
	log := r.logger.Ctx(ctx)

	var kind, raw string
	err := r.db.QueryRowContext(ctx, getSetting, key).Scan(&kind, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SettingValue{}, ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("backend", r.name).
			Str("key", key).
			Str("pg_code", postgresError(err)).
			Msg("failed to query setting")
		return models.SettingValue{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	value, err := models.DecodeSettingValue(models.SettingKind(kind), raw)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Get").Str("key", key).Msg("failed to decode setting")
		return models.SettingValue{}, fmt.Errorf("%w: %w", ErrCorruptedValue, err)
	}

	return value, nil
}

func (r *settingsRepository) Set(ctx context.Context, key string, value models.SettingValue) error {
	kind, raw := value.Encode()
	if kind == "" {
		return fmt.Errorf("%w: empty setting value for %q", models.ErrUnknownSettingKind, key)
	}

	if _, err := r.db.ExecContext(ctx, upsertSetting, key, string(kind), raw); err != nil {
		r.logger.Ctx(ctx).Err(err).
			Str("func", "settingsRepository.Set").
			Str("backend", r.name).
			Str("key", key).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteSetting, key); err != nil {
		r.logger.Ctx(ctx).Err(err).
			Str("func", "settingsRepository.Delete").
			Str("backend", r.name).
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}

func (r *settingsRepository) All(ctx context.Context) (map[string]models.SettingValue, error) {
	log := r.logger.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, getAllSettings)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.All").Str("backend", r.name).Msg("failed to query settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	result := make(map[string]models.SettingValue)
	for rows.Next() {
		var key, kind, raw string
		if err := rows.Scan(&key, &kind, &raw); err != nil {
			log.Err(err).Str("func", "settingsRepository.All").Msg("failed to scan setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		value, err := models.DecodeSettingValue(models.SettingKind(kind), raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "settingsRepository.All").Str("key", key).Msg("skipping undecodable setting")
			continue
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "settingsRepository.All").Msg("error iterating setting rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return result, nil
}

func (r *settingsRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSettings); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "settingsRepository.Clear").Str("backend", r.name).Msg("failed to clear settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}
