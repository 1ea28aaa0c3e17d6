// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLockout(t *testing.T, timeoutLock bool) (LockoutController, SettingsBridge, *memSettings) {
	t.Helper()
	local := newMemSettings("local")
	bridge := newTestBridge(local, nil, newTestClock(testT0))
	require.NoError(t, bridge.Set(context.Background(), models.SettingTimeoutLock, models.BoolValue(timeoutLock)))
	return NewLockoutController(bridge, logger.Nop()), bridge, local
}

func TestLockout_LocksAfterMaxRetries(t *testing.T) {
	lc, _, _ := newTestLockout(t, true)
	ctx := context.Background()

	lc.RecordFailure(ctx, testT0)
	lc.RecordFailure(ctx, testT0)
	assert.False(t, lc.IsLocked(ctx, testT0), "two failures stay below maxRetries")

	lc.RecordFailure(ctx, testT0)

	remaining, locked := lc.CurrentLock(ctx, testT0)
	require.True(t, locked)
	assert.Equal(t, time.Minute, remaining)

	state := lc.State(ctx)
	assert.Equal(t, 3, state.FailureCount)
	require.NotNil(t, state.LockExpiry)
	assert.True(t, testT0.Add(time.Minute).Equal(*state.LockExpiry))
}

func TestLockout_DisabledNeverLocks(t *testing.T) {
	lc, _, _ := newTestLockout(t, false)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		lc.RecordFailure(ctx, testT0)
	}

	assert.False(t, lc.IsLocked(ctx, testT0))
	assert.Equal(t, 10, lc.State(ctx).FailureCount)
	assert.Nil(t, lc.State(ctx).LockExpiry)
}

func TestLockout_ExpiresAutomatically(t *testing.T) {
	lc, _, local := newTestLockout(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		lc.RecordFailure(ctx, testT0)
	}

	assert.True(t, lc.IsLocked(ctx, testT0.Add(59*time.Second)))
	assert.False(t, lc.IsLocked(ctx, testT0.Add(time.Minute)), "expiry equal to now is not a lock")

	_, ok := local.peek(models.SettingTimeoutExpiryDate)
	assert.False(t, ok, "stale expiry is removed")
	assert.Equal(t, 3, lc.State(ctx).FailureCount, "expiry does not reset the count")
}

func TestLockout_RelocksOnNextFailureAfterExpiry(t *testing.T) {
	lc, _, _ := newTestLockout(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		lc.RecordFailure(ctx, testT0)
	}

	later := testT0.Add(2 * time.Minute)
	require.False(t, lc.IsLocked(ctx, later))

	lc.RecordFailure(ctx, later)

	remaining, locked := lc.CurrentLock(ctx, later)
	require.True(t, locked)
	assert.Equal(t, time.Minute, remaining)
}

func TestLockout_ActiveLockIsNotExtended(t *testing.T) {
	lc, _, _ := newTestLockout(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		lc.RecordFailure(ctx, testT0)
	}
	lc.RecordFailure(ctx, testT0.Add(30*time.Second))

	state := lc.State(ctx)
	assert.Equal(t, 4, state.FailureCount)
	require.NotNil(t, state.LockExpiry)
	assert.True(t, testT0.Add(time.Minute).Equal(*state.LockExpiry))
}

func TestLockout_SuccessResetsCountButKeepsLock(t *testing.T) {
	lc, _, _ := newTestLockout(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		lc.RecordFailure(ctx, testT0)
	}
	lc.RecordSuccess(ctx)

	assert.Equal(t, 0, lc.State(ctx).FailureCount)
	assert.True(t, lc.IsLocked(ctx, testT0.Add(10*time.Second)), "a scheduled lock survives a success")
}

func TestLockout_SettingsAreReadLive(t *testing.T) {
	lc, bridge, _ := newTestLockout(t, true)
	ctx := context.Background()

	require.NoError(t, bridge.Set(ctx, models.SettingMaxRetries, models.IntValue(5)))
	require.NoError(t, bridge.Set(ctx, models.SettingTimeoutLength, models.IntValue(10)))

	for i := 0; i < 4; i++ {
		lc.RecordFailure(ctx, testT0)
	}
	assert.False(t, lc.IsLocked(ctx, testT0))

	lc.RecordFailure(ctx, testT0)
	remaining, locked := lc.CurrentLock(ctx, testT0)
	require.True(t, locked)
	assert.Equal(t, 10*time.Minute, remaining)
}

func TestLockout_NonPositiveTimeoutLengthPersistsNoLock(t *testing.T) {
	lc, bridge, local := newTestLockout(t, true)
	ctx := context.Background()

	require.NoError(t, bridge.Set(ctx, models.SettingTimeoutLength, models.IntValue(0)))

	for i := 0; i < 3; i++ {
		lc.RecordFailure(ctx, testT0)
	}

	assert.False(t, lc.IsLocked(ctx, testT0))
	_, ok := local.peek(models.SettingTimeoutExpiryDate)
	assert.False(t, ok)
}

func TestLockout_MistypedExpiryIsCleared(t *testing.T) {
	lc, _, local := newTestLockout(t, true)
	ctx := context.Background()

	local.put(models.SettingTimeoutExpiryDate, models.StringValue("tomorrow"))

	assert.False(t, lc.IsLocked(ctx, testT0))
	_, ok := local.peek(models.SettingTimeoutExpiryDate)
	assert.False(t, ok)
}

func TestLockout_ConcurrentFailuresAreAllCounted(t *testing.T) {
	lc, _, _ := newTestLockout(t, false)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lc.RecordFailure(ctx, testT0)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, lc.State(ctx).FailureCount)
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{time.Second, "00:01"},
		{1500 * time.Millisecond, "00:02"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{time.Minute, "01:00"},
		{90 * time.Minute, "90:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.in))
		})
	}
}
