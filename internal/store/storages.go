// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

// Storages groups every storage backend so it can be handed to the service
// layer in one value.
type Storages struct {
	// Secrets is the bbolt keychain holding the passcode record.
	Secrets SecretStore

	// LocalSettings is the authoritative settings replica (SQLite).
	LocalSettings SettingsBackend

	// CloudSettings is the optional remote replica; nil when no cloud DSN is
	// configured or the cloud could not be reached at startup.
	CloudSettings SettingsBackend

	// Cards is the SQLite card repository.
	Cards CardRepository

	closers []io.Closer
}

// NewStorages initialises the storage layer:
//  1. opens the bbolt secret store;
//  2. opens the local SQLite database and runs its migrations;
//  3. when a cloud DSN is configured, connects the PostgreSQL or Redis replica.
//
// A cloud replica that cannot be reached is logged and left nil: the core
// keeps working on the local replica alone.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{}

	secrets, err := NewBoltSecretStore(cfg.SecretsPath, log)
	if err != nil {
		return nil, fmt.Errorf("secret store error: %w", err)
	}
	s.Secrets = secrets
	s.closers = append(s.closers, secrets)

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	s.closers = append(s.closers, db)

	if err := db.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s.LocalSettings = NewLocalSettingsRepository(db, log)
	s.Cards = NewCardRepository(db, log)

	if cfg.Cloud.DSN != "" {
		cloud, closer, err := newCloudSettings(ctx, cfg.Cloud, log)
		if err != nil {
			log.Warn().Err(err).Str("func", "NewStorages").Msg("cloud settings replica unavailable, continuing with local only")
		} else {
			s.CloudSettings = cloud
			s.closers = append(s.closers, closer)
		}
	}

	return s, nil
}

func newCloudSettings(ctx context.Context, cfg config.Cloud, log *logger.Logger) (SettingsBackend, io.Closer, error) {
	switch config.CloudKind(cfg.DSN) {
	case config.CloudPostgres:
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("cloud migration failed: %w", err)
		}
		return NewPostgresSettingsRepository(db, log), db, nil
	case config.CloudRedis:
		client, err := NewConnectRedis(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisSettingsRepository(client, log), client, nil
	default:
		return nil, nil, errors.New("unsupported cloud DSN")
	}
}

// Close releases every opened backend in reverse order.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
