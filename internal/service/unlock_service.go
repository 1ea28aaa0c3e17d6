// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/internal/validators"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// unlockService is the concrete implementation of [UnlockService]. It ties
// the credential store to the lockout controller and hands out JWT session
// tokens on success.
type unlockService struct {
	// mu holds the lock check, verification and failure recording of one
	// attempt together.
	mu sync.Mutex

	credentials CredentialStore
	lockout     LockoutController
	settings    SettingsBridge
	cards       CardService
	clock       Clock

	// defaultHashType is the algorithm stored passcodes are migrated to on
	// a successful unlock.
	defaultHashType models.HashType

	// tokenSignKey signs and verifies session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued token.
	tokenIssuer string

	// tokenDuration controls how long a session stays valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewUnlockService(
	credentials CredentialStore,
	lockout LockoutController,
	settings SettingsBridge,
	cards CardService,
	clock Clock,
	cfg config.App,
	log *logger.Logger,
) UnlockService {
	hashType, err := models.ParseHashType(cfg.DefaultHashType)
	if err != nil {
		hashType = models.HashSHA256
	}

	return &unlockService{
		credentials:     credentials,
		lockout:         lockout,
		settings:        settings,
		cards:           cards,
		clock:           clock,
		defaultHashType: hashType,
		tokenSignKey:    cfg.SessionSignKey,
		tokenIssuer:     cfg.SessionIssuer,
		tokenDuration:   cfg.SessionDuration,
		logger:          log,
	}
}

// Unlock checks passcode against the stored credential.
//
// Returns:
//   - ErrLocked while a lockout is in effect; the attempt is not counted.
//   - ErrNoPasscode when no passcode was ever set.
//   - ErrWrongPasscode when passcode does not verify; the failure is counted.
//   - ErrTokenCreationFailed when the session token cannot be signed.
func (s *unlockService) Unlock(ctx context.Context, passcode string) (models.UnlockResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.Ctx(ctx)
	now := s.clock.Now()

	if err := s.checkLock(ctx, now); err != nil {
		return models.UnlockResult{}, err
	}

	if !s.credentials.Exists(ctx) {
		return models.UnlockResult{}, ErrNoPasscode
	}

	if !s.credentials.Verify(ctx, passcode) {
		s.lockout.RecordFailure(ctx, now)
		log.Info().Msg("wrong passcode")
		return models.UnlockResult{}, ErrWrongPasscode
	}

	s.lockout.RecordSuccess(ctx)

	migrated := false
	if current, ok := s.credentials.HashType(ctx); ok && current != s.defaultHashType {
		migrated = s.credentials.MigrateAlgorithm(ctx, s.defaultHashType, passcode)
		if migrated {
			log.Info().Str("from", current.String()).Str("to", s.defaultHashType.String()).Msg("passcode hash migrated")
		} else {
			log.Warn().Str("from", current.String()).Msg("passcode hash migration failed")
		}
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, utils.NewID(), s.tokenDuration, s.tokenSignKey, now)
	if err != nil {
		log.Err(err).Str("func", "unlockService.Unlock").Msg("failed to sign session token")
		return models.UnlockResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("session_id", token.SessionID()).Msg("unlocked")
	return models.UnlockResult{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Time,
		Migrated:  migrated,
	}, nil
}

// ChangePasscode sets the first passcode or replaces the current one.
// currentPasscode is ignored when no passcode exists yet. Replacing a
// passcode goes through the same lockout as Unlock: it is refused with
// ErrLocked while locked and a wrong currentPasscode counts as a failure.
func (s *unlockService) ChangePasscode(ctx context.Context, newPasscode, currentPasscode string) error {
	if err := validators.ValidatePasscode(newPasscode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.Ctx(ctx)

	if !s.credentials.Exists(ctx) {
		if !s.credentials.SetPassword(ctx, newPasscode) {
			return ErrPasscodeNotChanged
		}
		log.Info().Msg("passcode set")
		return nil
	}

	now := s.clock.Now()
	if err := s.checkLock(ctx, now); err != nil {
		return err
	}

	if !s.credentials.Verify(ctx, currentPasscode) {
		s.lockout.RecordFailure(ctx, now)
		log.Info().Msg("passcode change refused, wrong current passcode")
		return ErrPasscodeNotChanged
	}
	s.lockout.RecordSuccess(ctx)

	if !s.credentials.SetPassword(ctx, newPasscode, WithCurrent(currentPasscode)) {
		return ErrPasscodeNotChanged
	}
	log.Info().Msg("passcode changed")
	return nil
}

// checkLock returns ErrLocked with the remaining time while a lockout is in
// effect. Callers hold s.mu.
func (s *unlockService) checkLock(ctx context.Context, now time.Time) error {
	remaining, locked := s.lockout.CurrentLock(ctx, now)
	if !locked {
		return nil
	}
	s.logger.Ctx(ctx).Info().Str("remaining", FormatRemaining(remaining)).Msg("attempt refused, entry locked")
	return fmt.Errorf("%w: %s remaining", ErrLocked, FormatRemaining(remaining))
}

func (s *unlockService) LockStatus(ctx context.Context) models.LockStatus {
	remaining, locked := s.lockout.CurrentLock(ctx, s.clock.Now())

	status := models.LockStatus{
		Locked:       locked,
		FailureCount: s.lockout.State(ctx).FailureCount,
	}
	if locked {
		status.Remaining = FormatRemaining(remaining)
		status.RemainingSec = int64((remaining + time.Second - 1) / time.Second)
	}
	return status
}

func (s *unlockService) ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		s.logger.Ctx(ctx).Debug().Err(err).Msg("session token rejected")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// ResetApp erases the passcode, every setting and every card. It is the
// "forgot passcode" path and must only be reachable after device-level
// authentication.
func (s *unlockService) ResetApp(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	if !s.credentials.Clear(ctx) {
		errs = append(errs, errors.New("clear passcode"))
	}
	if err := s.settings.Reset(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.cards.Reset(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "unlockService.ResetApp").Msg("app reset incomplete")
		return err
	}

	s.logger.Ctx(ctx).Info().Msg("app reset")
	return nil
}
