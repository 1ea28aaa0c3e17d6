// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// lockoutController is the concrete implementation of [LockoutController].
//
// The lock is a deterrent for the UI only. The passcode itself is not rate
// limited at the storage layer, so anyone with direct access to the secret
// store can bypass it.
//
// Settings (timeoutLock, maxRetries, timeoutLength) are read on every call.
// Once an expiry is persisted it stays fixed until it passes: later failures
// and settings changes neither extend nor shorten it, and a successful
// unlock does not cancel it.
type lockoutController struct {
	mu sync.Mutex

	settings SettingsBridge
	logger   *logger.Logger
}

func NewLockoutController(settings SettingsBridge, log *logger.Logger) LockoutController {
	return &lockoutController{settings: settings, logger: log}
}

// RecordFailure counts a failed attempt and schedules a lock when the
// timeout lock is enabled and the count reached maxRetries.
func (c *lockoutController) RecordFailure(ctx context.Context, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.logger.Ctx(ctx)

	count := c.settings.Int(ctx, models.SettingFailedAttempts) + 1
	if err := c.settings.Set(ctx, models.SettingFailedAttempts, models.IntValue(count)); err != nil {
		log.Err(err).Str("func", "lockoutController.RecordFailure").Msg("failed to persist failure count")
	}

	if !c.settings.Bool(ctx, models.SettingTimeoutLock) {
		return
	}
	if count < c.settings.Int(ctx, models.SettingMaxRetries) {
		return
	}
	if _, locked := c.currentLock(ctx, now); locked {
		return
	}

	minutes := c.settings.Int(ctx, models.SettingTimeoutLength)
	if minutes <= 0 {
		log.Debug().Int("timeout_length", minutes).Msg("lock skipped, non-positive timeout length")
		return
	}

	expiry := now.Add(time.Duration(minutes) * time.Minute)
	if err := c.settings.Set(ctx, models.SettingTimeoutExpiryDate, models.TimestampValue(expiry)); err != nil {
		log.Err(err).Str("func", "lockoutController.RecordFailure").Msg("failed to persist lock expiry")
		return
	}

	log.Info().Int("failed_attempts", count).Time("lock_expiry", expiry).Msg("passcode entry locked")
}

// RecordSuccess resets the failure count. A scheduled lock stays in place.
func (c *lockoutController) RecordSuccess(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.settings.Set(ctx, models.SettingFailedAttempts, models.IntValue(0)); err != nil {
		c.logger.Ctx(ctx).Err(err).Str("func", "lockoutController.RecordSuccess").Msg("failed to reset failure count")
	}
}

// CurrentLock returns the time left on an active lock. An expiry at or
// before now is removed as a side effect.
func (c *lockoutController) CurrentLock(ctx context.Context, now time.Time) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentLock(ctx, now)
}

func (c *lockoutController) IsLocked(ctx context.Context, now time.Time) bool {
	_, locked := c.CurrentLock(ctx, now)
	return locked
}

func (c *lockoutController) State(ctx context.Context) models.LockoutState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := models.LockoutState{FailureCount: c.settings.Int(ctx, models.SettingFailedAttempts)}
	if v, ok := c.settings.Object(ctx, models.SettingTimeoutExpiryDate); ok {
		if expiry, ok := v.Timestamp(); ok {
			state.LockExpiry = &expiry
		}
	}
	return state
}

// currentLock requires c.mu.
func (c *lockoutController) currentLock(ctx context.Context, now time.Time) (time.Duration, bool) {
	v, ok := c.settings.Object(ctx, models.SettingTimeoutExpiryDate)
	if !ok {
		return 0, false
	}

	expiry, isTimestamp := v.Timestamp()
	if isTimestamp && expiry.After(now) {
		return expiry.Sub(now), true
	}

	if err := c.settings.Remove(ctx, models.SettingTimeoutExpiryDate); err != nil {
		c.logger.Ctx(ctx).Err(err).Str("func", "lockoutController.currentLock").Msg("failed to clear expired lock")
	}
	return 0, false
}

// FormatRemaining renders d as MM:SS for a countdown, rounding up to the
// next whole second. Durations of an hour or more keep counting minutes.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
