// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

var bucketSecrets = []byte("secrets")

// BoltSecretStore implements [SecretStore] on a single bbolt bucket. bbolt
// runs one write transaction at a time, so every Set is atomic with respect
// to concurrent readers.
type BoltSecretStore struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltSecretStore opens (or creates) the bbolt file at path with 0600
// permissions and ensures the secrets bucket exists.
func NewBoltSecretStore(path string, log *logger.Logger) (*BoltSecretStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewBoltSecretStore").Msg("error creating secret store directory")
			return nil, fmt.Errorf("create secret store dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSecretStore").Msg("error opening secret store")
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, bErr := tx.CreateBucketIfNotExists(bucketSecrets)
		return bErr
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	log.Debug().Str("func", "NewBoltSecretStore").Str("path", path).Msg("secret store opened")

	return &BoltSecretStore{db: db, logger: log}, nil
}

// Get returns the value stored under key, or [ErrSecretNotFound].
func (s *BoltSecretStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var val string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSecrets).Get([]byte(key))
		if v == nil {
			return ErrSecretNotFound
		}
		val = string(v)
		return nil
	})
	return val, err
}

// Set stores value under key, replacing any previous value.
func (s *BoltSecretStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSecrets).Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "BoltSecretStore.Set").Str("key", key).Msg("error writing secret")
		return fmt.Errorf("put secret %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *BoltSecretStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSecrets).Delete([]byte(key))
	})
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "BoltSecretStore.Delete").Str("key", key).Msg("error deleting secret")
		return fmt.Errorf("delete secret %q: %w", key, err)
	}
	return nil
}

// Clear drops every stored secret.
func (s *BoltSecretStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketSecrets); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketSecrets)
		return err
	})
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "BoltSecretStore.Clear").Msg("error clearing secrets")
		return fmt.Errorf("clear secrets: %w", err)
	}
	return nil
}

// Close closes the underlying bbolt database.
func (s *BoltSecretStore) Close() error {
	return s.db.Close()
}
