// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type unlockFixture struct {
	svc         UnlockService
	credentials CredentialStore
	lockout     LockoutController
	settings    SettingsBridge
	local       *memSettings
	cards       *mock.MockCardService
	clock       *testClock
}

// newTestUnlockService runs on the wall clock so issued tokens validate.
func newTestUnlockService(t *testing.T) unlockFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	clock := newTestClock(time.Now().UTC())
	local := newMemSettings("local")
	settings := newTestBridge(local, nil, clock)
	lockout := NewLockoutController(settings, logger.Nop())
	credentials := NewCredentialStore(newTestSecrets(t), testAppConfig, logger.Nop())
	cards := mock.NewMockCardService(ctrl)

	require.NoError(t, settings.Set(context.Background(), models.SettingTimeoutLock, models.BoolValue(true)))

	return unlockFixture{
		svc:         NewUnlockService(credentials, lockout, settings, cards, clock, testAppConfig, logger.Nop()),
		credentials: credentials,
		lockout:     lockout,
		settings:    settings,
		local:       local,
		cards:       cards,
		clock:       clock,
	}
}

func TestUnlockService_NoPasscode(t *testing.T) {
	f := newTestUnlockService(t)

	_, err := f.svc.Unlock(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoPasscode)
	assert.Equal(t, 0, f.lockout.State(context.Background()).FailureCount)
}

func TestUnlockService_Success(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))

	_, err := f.svc.Unlock(ctx, "000000")
	require.ErrorIs(t, err, ErrWrongPasscode)
	assert.Equal(t, 1, f.lockout.State(ctx).FailureCount)

	res, err := f.svc.Unlock(ctx, "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.False(t, res.Migrated)
	assert.WithinDuration(t, f.clock.Now().Add(testAppConfig.SessionDuration), res.ExpiresAt, time.Second)
	assert.Equal(t, 0, f.lockout.State(ctx).FailureCount, "success resets the count")

	token, err := f.svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SessionID())
	assert.Equal(t, testAppConfig.SessionIssuer, token.Issuer)
}

func TestUnlockService_LocksAfterRepeatedFailures(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))

	for i := 0; i < 3; i++ {
		_, err := f.svc.Unlock(ctx, "000000")
		require.ErrorIs(t, err, ErrWrongPasscode)
	}

	_, err := f.svc.Unlock(ctx, "123456")
	assert.ErrorIs(t, err, ErrLocked, "the right passcode is refused while locked")
	assert.Equal(t, 3, f.lockout.State(ctx).FailureCount, "refused attempts are not counted")

	status := f.svc.LockStatus(ctx)
	assert.True(t, status.Locked)
	assert.Equal(t, "01:00", status.Remaining)
	assert.Equal(t, int64(60), status.RemainingSec)
	assert.Equal(t, 3, status.FailureCount)

	f.clock.Advance(time.Minute)

	assert.False(t, f.svc.LockStatus(ctx).Locked)
	_, err = f.svc.Unlock(ctx, "123456")
	require.NoError(t, err)
}

func TestUnlockService_ConcurrentWrongGuessesStopAtMaxRetries(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	// argon2id keeps each verification slow enough for attempts to overlap.
	require.True(t, f.credentials.SetPassword(ctx, "123456", WithHashType(models.HashArgon2ID)))

	const attempts = 40
	var wrong, locked atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Unlock(ctx, "000000")
			switch {
			case errors.Is(err, ErrWrongPasscode):
				wrong.Add(1)
			case errors.Is(err, ErrLocked):
				locked.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(testLockoutDefaults.MaxRetries), wrong.Load(), "only maxRetries guesses are verified")
	assert.Equal(t, int64(attempts-testLockoutDefaults.MaxRetries), locked.Load())
	assert.Equal(t, testLockoutDefaults.MaxRetries, f.lockout.State(ctx).FailureCount)
}

func TestUnlockService_MigratesHashOnSuccess(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.True(t, f.credentials.SetPassword(ctx, "123456", WithHashType(models.HashSHA1)))

	res, err := f.svc.Unlock(ctx, "123456")
	require.NoError(t, err)
	assert.True(t, res.Migrated)

	got, ok := f.credentials.HashType(ctx)
	require.True(t, ok)
	assert.Equal(t, models.HashSHA256, got)
	assert.True(t, f.credentials.Verify(ctx, "123456"))

	res, err = f.svc.Unlock(ctx, "123456")
	require.NoError(t, err)
	assert.False(t, res.Migrated, "already on the default algorithm")
}

func TestUnlockService_ChangePasscode(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.ChangePasscode(ctx, "12ab56", ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, f.svc.ChangePasscode(ctx, "12345", ""), ErrInvalidDataProvided)

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))
	assert.ErrorIs(t, f.svc.ChangePasscode(ctx, "654321", "000000"), ErrPasscodeNotChanged)
	require.NoError(t, f.svc.ChangePasscode(ctx, "654321", "123456"))

	assert.True(t, f.credentials.Verify(ctx, "654321"))
}

func TestUnlockService_ChangePasscodeCountsWrongCurrent(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))

	for i := 1; i <= 3; i++ {
		assert.ErrorIs(t, f.svc.ChangePasscode(ctx, "999999", "000000"), ErrPasscodeNotChanged)
		assert.Equal(t, i, f.lockout.State(ctx).FailureCount)
	}
	require.True(t, f.svc.LockStatus(ctx).Locked)

	err := f.svc.ChangePasscode(ctx, "999999", "123456")
	assert.ErrorIs(t, err, ErrLocked, "the right current passcode is refused while locked")
	assert.Equal(t, 3, f.lockout.State(ctx).FailureCount, "refused attempts are not counted")
	assert.True(t, f.credentials.Verify(ctx, "123456"))
	assert.False(t, f.credentials.Verify(ctx, "999999"))

	f.clock.Advance(time.Minute)

	require.NoError(t, f.svc.ChangePasscode(ctx, "999999", "123456"))
	assert.True(t, f.credentials.Verify(ctx, "999999"))
	assert.Equal(t, 0, f.lockout.State(ctx).FailureCount, "a verified change resets the count")
}

func TestUnlockService_ChangePasscodeSharesFailuresWithUnlock(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))

	_, err := f.svc.Unlock(ctx, "000000")
	require.ErrorIs(t, err, ErrWrongPasscode)
	_, err = f.svc.Unlock(ctx, "000001")
	require.ErrorIs(t, err, ErrWrongPasscode)
	require.ErrorIs(t, f.svc.ChangePasscode(ctx, "999999", "000002"), ErrPasscodeNotChanged)

	_, err = f.svc.Unlock(ctx, "123456")
	assert.ErrorIs(t, err, ErrLocked)
}

func TestUnlockService_ParseTokenRejectsBadTokens(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	_, err := f.svc.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	expired, err := utils.GenerateSessionToken(testAppConfig.SessionIssuer, "sid", time.Minute, testAppConfig.SessionSignKey, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = f.svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	foreign, err := utils.GenerateSessionToken(testAppConfig.SessionIssuer, "sid", time.Minute, "other-key", time.Now())
	require.NoError(t, err)
	_, err = f.svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestUnlockService_ResetApp(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ChangePasscode(ctx, "123456", ""))
	require.NoError(t, f.settings.Set(ctx, models.SettingFakePin, models.BoolValue(true)))

	f.cards.EXPECT().Reset(ctx).Return(nil)

	require.NoError(t, f.svc.ResetApp(ctx))

	assert.False(t, f.credentials.Exists(ctx))
	all, err := f.local.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUnlockService_ResetAppReportsFailures(t *testing.T) {
	f := newTestUnlockService(t)
	ctx := context.Background()

	f.cards.EXPECT().Reset(ctx).Return(assert.AnError)

	err := f.svc.ResetApp(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
