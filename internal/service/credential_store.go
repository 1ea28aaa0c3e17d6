// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/hashing"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// credentialKey is the secret store key holding the JSON [models.Credential].
const credentialKey = "passcode"

var errCorruptedCredential = errors.New("corrupted credential record")

// CredentialStore owns the application passcode lifecycle.
//
// Every method is total: wrong passcodes, missing records and store failures
// all surface as false, never as a panic.
type CredentialStore interface {
	Exists(ctx context.Context) bool
	Verify(ctx context.Context, candidate string) bool
	SetPassword(ctx context.Context, newSecret string, opts ...SetOption) bool
	ResetPassword(ctx context.Context, newSecret string, opts ...SetOption) bool
	MigrateAlgorithm(ctx context.Context, newType models.HashType, currentSecret string) bool
	SetSaltLength(ctx context.Context, length int, currentSecret string) bool
	HashType(ctx context.Context) (models.HashType, bool)
	Clear(ctx context.Context) bool
}

// SetOption customises a passcode write.
type SetOption func(*setOptions)

type setOptions struct {
	current    *string
	hashType   *models.HashType
	saltLength *int
}

// WithCurrent supplies the passcode currently stored. Required whenever a
// record already exists.
func WithCurrent(secret string) SetOption {
	return func(o *setOptions) { o.current = &secret }
}

// WithHashType selects the algorithm for the new record.
func WithHashType(t models.HashType) SetOption {
	return func(o *setOptions) { o.hashType = &t }
}

// WithSaltLength selects the salt length for the new record.
func WithSaltLength(n int) SetOption {
	return func(o *setOptions) { o.saltLength = &n }
}

// credentialStore is the concrete implementation of [CredentialStore].
//
// The whole record is written under one key, so a hash can never be paired
// with a stale salt or algorithm. A mutex serialises every read-modify-write.
type credentialStore struct {
	mu sync.Mutex

	secrets store.SecretStore

	// defaultHashType and defaultSaltLength apply when neither the caller nor
	// an existing record decides. MigrateAlgorithm and SetSaltLength change
	// them while no record exists.
	defaultHashType   models.HashType
	defaultSaltLength int

	logger *logger.Logger
}

// NewCredentialStore constructs a [CredentialStore] on secrets. Invalid
// configured defaults fall back to SHA-256 and [models.DefaultSaltLength].
func NewCredentialStore(secrets store.SecretStore, cfg config.App, log *logger.Logger) CredentialStore {
	hashType, err := models.ParseHashType(cfg.DefaultHashType)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewCredentialStore").Msg("falling back to sha256")
		hashType = models.HashSHA256
	}

	saltLength := cfg.SaltLength
	if saltLength < models.MinSaltLength {
		saltLength = models.DefaultSaltLength
	}

	return &credentialStore{
		secrets:           secrets,
		defaultHashType:   hashType,
		defaultSaltLength: saltLength,
		logger:            log,
	}
}

func (s *credentialStore) Exists(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.load(ctx)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "credentialStore.Exists").Msg("failed to read credential")
		return false
	}
	return ok
}

// Verify reports whether candidate matches the stored passcode. It fails
// closed for an empty candidate, a missing record and an unreadable record.
func (s *credentialStore) Verify(ctx context.Context, candidate string) bool {
	if candidate == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok, err := s.load(ctx)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "credentialStore.Verify").Msg("failed to read credential")
		return false
	}
	if !ok {
		return false
	}
	return matches(rec, candidate)
}

// SetPassword stores newSecret. When a record exists the current passcode
// must be supplied through [WithCurrent] and must verify; otherwise nothing
// changes. Algorithm and salt length come from the options, then from the
// existing record, then from the defaults.
func (s *credentialStore) SetPassword(ctx context.Context, newSecret string, opts ...SetOption) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(ctx, newSecret, collectOptions(opts), true)
}

// ResetPassword replaces the record with newSecret without checking the
// current passcode. It is a full credential bypass: callers must gate it
// behind an independent proof of identity such as device authentication.
//
// The replacement is a single write, so a failed reset leaves the previous
// record in place.
func (s *credentialStore) ResetPassword(ctx context.Context, newSecret string, opts ...SetOption) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(ctx, newSecret, collectOptions(opts), false)
}

// MigrateAlgorithm rehashes the stored passcode under newType. With no
// record it only changes the algorithm used for the next record.
func (s *credentialStore) MigrateAlgorithm(ctx context.Context, newType models.HashType, currentSecret string) bool {
	if !newType.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.load(ctx)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "credentialStore.MigrateAlgorithm").Msg("failed to read credential")
		return false
	}
	if !ok {
		s.defaultHashType = newType
		return true
	}

	opts := setOptions{current: &currentSecret, hashType: &newType}
	return s.set(ctx, currentSecret, opts, true)
}

// SetSaltLength rehashes the stored passcode with a fresh salt of length.
// With no record it only changes the length used for the next record.
func (s *credentialStore) SetSaltLength(ctx context.Context, length int, currentSecret string) bool {
	if length < models.MinSaltLength {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.load(ctx)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "credentialStore.SetSaltLength").Msg("failed to read credential")
		return false
	}
	if !ok {
		s.defaultSaltLength = length
		return true
	}

	opts := setOptions{current: &currentSecret, saltLength: &length}
	return s.set(ctx, currentSecret, opts, true)
}

// HashType reports the algorithm of the stored record.
func (s *credentialStore) HashType(ctx context.Context) (models.HashType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok, err := s.load(ctx)
	if err != nil || !ok {
		return "", false
	}
	return rec.HashType, true
}

// Clear erases the record. Clearing an absent record succeeds.
func (s *credentialStore) Clear(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.secrets.Delete(ctx, credentialKey); err != nil && !errors.Is(err, store.ErrSecretNotFound) {
		s.logger.Ctx(ctx).Err(err).Str("func", "credentialStore.Clear").Msg("failed to delete credential")
		return false
	}
	return true
}

// set writes a new record. Callers hold s.mu. With verifyCurrent false the
// existing record is neither read nor checked.
func (s *credentialStore) set(ctx context.Context, newSecret string, opts setOptions, verifyCurrent bool) bool {
	log := s.logger.Ctx(ctx)

	if newSecret == "" {
		log.Debug().Str("func", "credentialStore.set").Msg("empty passcode rejected")
		return false
	}

	var (
		prev   models.Credential
		exists bool
	)
	if verifyCurrent {
		var err error
		prev, exists, err = s.load(ctx)
		if err != nil {
			log.Err(err).Str("func", "credentialStore.set").Msg("failed to read credential")
			return false
		}
		if exists && (opts.current == nil || !matches(prev, *opts.current)) {
			log.Debug().Str("func", "credentialStore.set").Msg("current passcode does not verify")
			return false
		}
	}

	hashType := s.defaultHashType
	switch {
	case opts.hashType != nil:
		hashType = *opts.hashType
	case exists:
		hashType = prev.HashType
	}
	if !hashType.Valid() {
		log.Debug().Str("func", "credentialStore.set").Str("hash_type", hashType.String()).Msg("invalid hash type rejected")
		return false
	}

	saltLength := s.defaultSaltLength
	switch {
	case opts.saltLength != nil:
		saltLength = *opts.saltLength
	case exists && prev.SaltLength >= models.MinSaltLength:
		saltLength = prev.SaltLength
	}
	if saltLength < models.MinSaltLength {
		log.Debug().Str("func", "credentialStore.set").Int("salt_length", saltLength).Msg("salt length below minimum rejected")
		return false
	}

	salt, err := utils.RandomAlphanumeric(saltLength)
	if err != nil {
		log.Err(err).Str("func", "credentialStore.set").Msg("failed to generate salt")
		return false
	}

	rec := models.Credential{
		HashedSecret: hashing.Digest(hashType, salt+newSecret),
		Salt:         salt,
		HashType:     hashType,
		SaltLength:   saltLength,
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		log.Err(err).Str("func", "credentialStore.set").Msg("failed to encode credential")
		return false
	}

	if err := s.secrets.Set(ctx, credentialKey, string(raw)); err != nil {
		log.Err(err).Str("func", "credentialStore.set").Msg("failed to write credential")
		return false
	}

	log.Info().Str("hash_type", hashType.String()).Int("salt_length", saltLength).Msg("passcode stored")
	return true
}

// load reads the record. ok is false when no passcode was ever set.
func (s *credentialStore) load(ctx context.Context) (rec models.Credential, ok bool, err error) {
	raw, err := s.secrets.Get(ctx, credentialKey)
	if errors.Is(err, store.ErrSecretNotFound) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, err
	}

	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.Credential{}, false, fmt.Errorf("%w: %w", errCorruptedCredential, err)
	}
	if rec.HashedSecret == "" {
		return models.Credential{}, false, nil
	}
	if !rec.HashType.Valid() {
		return models.Credential{}, false, fmt.Errorf("%w: hash type %q", errCorruptedCredential, rec.HashType)
	}

	return rec, true, nil
}

func matches(rec models.Credential, candidate string) bool {
	if candidate == "" {
		return false
	}
	digest := hashing.Digest(rec.HashType, rec.Salt+candidate)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(rec.HashedSecret)) == 1
}

func collectOptions(opts []SetOption) setOptions {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
