// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// syncedKeys are copied between replicas on activation and synchronization.
var syncedKeys = append(slices.DeleteFunc(slices.Clone(models.UserSettingKeys), models.IsDeviceLocal), models.SettingLastUpdate)

// settingsBridge is the concrete implementation of [SettingsBridge].
//
// The local replica is authoritative: every write lands there first and
// every read falls back to it. The cloud replica is used only while the
// device-local iCloudSync flag is on, and its failures are logged, never
// returned from the typed accessors.
type settingsBridge struct {
	// mu is held exclusively by the replica-wide operations (activation,
	// synchronization, reset) and shared by single-key writes.
	mu sync.RWMutex

	local store.SettingsBackend
	cloud store.SettingsBackend // nil when no cloud replica is configured

	defaults config.Lockout
	clock    Clock
	logger   *logger.Logger
}

// NewSettingsBridge constructs a [SettingsBridge]. cloud may be nil.
func NewSettingsBridge(local, cloud store.SettingsBackend, defaults config.Lockout, clock Clock, log *logger.Logger) SettingsBridge {
	if defaults.MaxRetries <= 0 {
		defaults.MaxRetries = models.DefaultMaxRetries
	}
	if defaults.TimeoutLength <= 0 {
		defaults.TimeoutLength = models.DefaultTimeoutLength
	}

	return &settingsBridge{
		local:    local,
		cloud:    cloud,
		defaults: defaults,
		clock:    clock,
		logger:   log,
	}
}

// Bool returns the flag stored under key, false when absent or not a bool.
func (b *settingsBridge) Bool(ctx context.Context, key string) bool {
	v, ok := b.read(ctx, key)
	if !ok {
		return false
	}
	flag, isBool := v.Bool()
	return isBool && flag
}

// Int returns the number stored under key. Absent or mistyped values yield
// the configured default for maxRetries and timeoutLength and 0 otherwise.
func (b *settingsBridge) Int(ctx context.Context, key string) int {
	if v, ok := b.read(ctx, key); ok {
		if n, isInt := v.Int(); isInt {
			return n
		}
	}

	switch key {
	case models.SettingMaxRetries:
		return b.defaults.MaxRetries
	case models.SettingTimeoutLength:
		return b.defaults.TimeoutLength
	default:
		return 0
	}
}

func (b *settingsBridge) Object(ctx context.Context, key string) (models.SettingValue, bool) {
	return b.read(ctx, key)
}

// Set writes value locally, stamps lastUpdate, then mirrors both to the cloud
// when sync is on. Device-local keys are written locally only and leave
// lastUpdate alone. Only a local failure is returned.
func (b *settingsBridge) Set(ctx context.Context, key string, value models.SettingValue) error {
	if value.IsZero() {
		return fmt.Errorf("%w: empty value for %q", ErrInvalidDataProvided, key)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.local.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}
	if models.IsDeviceLocal(key) {
		return nil
	}

	return b.afterLocalWrite(ctx, key, func(cloud store.SettingsBackend) error {
		return cloud.Set(ctx, key, value)
	})
}

// Remove deletes key from the local replica and, when sync is on, from the
// cloud. Removing an absent key succeeds.
func (b *settingsBridge) Remove(ctx context.Context, key string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.local.Delete(ctx, key); err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}
	if models.IsDeviceLocal(key) {
		return nil
	}

	return b.afterLocalWrite(ctx, key, func(cloud store.SettingsBackend) error {
		if err := cloud.Delete(ctx, key); err != nil && !errors.Is(err, store.ErrSettingNotFound) {
			return err
		}
		return nil
	})
}

// SyncEnabled reports whether a cloud replica exists and the local
// iCloudSync flag is on.
func (b *settingsBridge) SyncEnabled(ctx context.Context) bool {
	if b.cloud == nil {
		return false
	}

	v, err := b.local.Get(ctx, models.SettingCloudSync)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			b.logger.Ctx(ctx).Err(err).Str("func", "settingsBridge.SyncEnabled").Msg("failed to read sync flag")
		}
		return false
	}
	on, isBool := v.Bool()
	return isBool && on
}

// ActivateSync switches cloud sync on. KeepLocal replaces the cloud replica
// with the local one; KeepCloud replaces the local replica with the cloud
// one. Nothing is merged field by field. Activating twice is a no-op.
func (b *settingsBridge) ActivateSync(ctx context.Context, option models.MergeOption) error {
	if !option.Valid() {
		return fmt.Errorf("%w: merge option %q", ErrInvalidDataProvided, option)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	log := b.logger.Ctx(ctx)

	if b.cloud == nil {
		return ErrCloudNotConfigured
	}
	if b.SyncEnabled(ctx) {
		log.Debug().Msg("cloud sync already active")
		return nil
	}

	var err error
	switch option {
	case models.KeepLocal:
		err = b.push(ctx)
	case models.KeepCloud:
		err = b.pull(ctx)
	}
	if err != nil {
		log.Err(err).Str("func", "settingsBridge.ActivateSync").Str("option", string(option)).Msg("failed to activate cloud sync")
		return err
	}

	if err := b.local.Set(ctx, models.SettingCloudSync, models.BoolValue(true)); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	log.Info().Str("option", string(option)).Str("cloud", b.cloud.Name()).Msg("cloud sync activated")
	return nil
}

// DeactivateSync switches cloud sync off. Both replicas keep their data.
func (b *settingsBridge) DeactivateSync(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.local.Set(ctx, models.SettingCloudSync, models.BoolValue(false)); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	b.logger.Ctx(ctx).Info().Msg("cloud sync deactivated")
	return nil
}

// LastUpdateResult compares the lastUpdate stamps of both replicas. Equal
// stamps report LocalIsNewer since the local replica wins ties.
func (b *settingsBridge) LastUpdateResult(ctx context.Context) models.LastUpdateResult {
	result, _ := b.compare(ctx)
	return result
}

// Synchronize copies the newer replica over the older one. It is a no-op
// while sync is off or when both stamps are equal.
func (b *settingsBridge) Synchronize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.SyncEnabled(ctx) {
		return nil
	}

	log := b.logger.Ctx(ctx)

	result, equal := b.compare(ctx)
	if equal {
		log.Debug().Msg("settings replicas already in sync")
		return nil
	}

	var err error
	switch result {
	case models.LocalIsNewer, models.CloudDoesNotExist:
		err = b.push(ctx)
	case models.CloudIsNewer:
		if err = b.pull(ctx); err == nil {
			err = b.local.Set(ctx, models.SettingCloudSync, models.BoolValue(true))
		}
	default:
		err = ErrCloudUnavailable
	}
	if err != nil {
		log.Err(err).Str("func", "settingsBridge.Synchronize").Str("last_update", result.String()).Msg("failed to synchronize settings")
		return err
	}

	log.Info().Str("last_update", result.String()).Msg("settings synchronized")
	return nil
}

// Reset wipes the local replica and, while sync is on, the cloud replica.
func (b *settingsBridge) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	syncing := b.SyncEnabled(ctx)

	if err := b.local.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	if syncing {
		if err := b.cloud.Clear(ctx); err != nil {
			b.logger.Ctx(ctx).Warn().Err(err).Str("func", "settingsBridge.Reset").Msg("failed to clear cloud settings")
		}
	}
	return nil
}

// read prefers the cloud replica while sync is on and mirrors what it finds
// into the local replica.
func (b *settingsBridge) read(ctx context.Context, key string) (models.SettingValue, bool) {
	log := b.logger.Ctx(ctx)

	if !models.IsDeviceLocal(key) && b.SyncEnabled(ctx) {
		v, err := b.cloud.Get(ctx, key)
		switch {
		case err == nil:
			if err := b.local.Set(ctx, key, v); err != nil {
				log.Err(err).Str("func", "settingsBridge.read").Str("key", key).Msg("failed to mirror cloud setting")
			}
			return v, true
		case errors.Is(err, store.ErrSettingNotFound):
		default:
			log.Warn().Err(err).Str("func", "settingsBridge.read").Str("key", key).Msg("cloud read failed, using local replica")
		}
	}

	v, err := b.local.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			log.Err(err).Str("func", "settingsBridge.read").Str("key", key).Msg("failed to read setting")
		}
		return models.SettingValue{}, false
	}
	return v, true
}

// afterLocalWrite stamps lastUpdate locally and mirrors the change plus the
// stamp to the cloud while sync is on. Cloud failures are logged only.
func (b *settingsBridge) afterLocalWrite(ctx context.Context, key string, mirror func(store.SettingsBackend) error) error {
	log := b.logger.Ctx(ctx)

	stamp := models.TimestampValue(b.clock.Now())
	if err := b.local.Set(ctx, models.SettingLastUpdate, stamp); err != nil {
		log.Err(err).Str("func", "settingsBridge.afterLocalWrite").Msg("failed to stamp local last update")
	}

	if !b.SyncEnabled(ctx) {
		return nil
	}

	if err := mirror(b.cloud); err != nil {
		log.Warn().Err(err).Str("func", "settingsBridge.afterLocalWrite").Str("key", key).Msg("cloud write failed")
		return nil
	}
	if err := b.cloud.Set(ctx, models.SettingLastUpdate, stamp); err != nil {
		log.Warn().Err(err).Str("func", "settingsBridge.afterLocalWrite").Msg("failed to stamp cloud last update")
	}
	return nil
}

// compare reads both lastUpdate stamps. equal is true only when both exist
// and match.
func (b *settingsBridge) compare(ctx context.Context) (result models.LastUpdateResult, equal bool) {
	if b.cloud == nil {
		return models.CloudDoesNotExist, false
	}

	log := b.logger.Ctx(ctx)

	cloudStamp, ok, err := lastUpdate(ctx, b.cloud)
	if err != nil {
		log.Warn().Err(err).Str("func", "settingsBridge.compare").Msg("failed to read cloud last update")
		return models.LastUpdateError, false
	}
	if !ok {
		return models.CloudDoesNotExist, false
	}

	localStamp, ok, err := lastUpdate(ctx, b.local)
	if err != nil {
		log.Err(err).Str("func", "settingsBridge.compare").Msg("failed to read local last update")
		return models.LastUpdateError, false
	}
	if !ok || cloudStamp.After(localStamp) {
		return models.CloudIsNewer, false
	}
	return models.LocalIsNewer, cloudStamp.Equal(localStamp)
}

// push replaces the cloud replica with the local one. Callers hold b.mu.
func (b *settingsBridge) push(ctx context.Context) error {
	src, err := b.local.All(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	if _, ok := src[models.SettingLastUpdate]; !ok {
		stamp := models.TimestampValue(b.clock.Now())
		if err := b.local.Set(ctx, models.SettingLastUpdate, stamp); err != nil {
			return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
		}
		src[models.SettingLastUpdate] = stamp
	}

	if err := replaceReplica(ctx, b.cloud, src); err != nil {
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}
	return nil
}

// pull replaces the local replica with the cloud one. The cloud is read
// before anything local is touched. Callers hold b.mu and restore the sync
// flag afterwards.
func (b *settingsBridge) pull(ctx context.Context) error {
	src, err := b.cloud.All(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}

	if err := replaceReplica(ctx, b.local, src); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}
	return nil
}

// replaceReplica overwrites dst with the synced keys of src. Device-local
// keys already on dst survive the overwrite.
func replaceReplica(ctx context.Context, dst store.SettingsBackend, src map[string]models.SettingValue) error {
	existing, err := dst.All(ctx)
	if err != nil {
		return err
	}

	if err := dst.Clear(ctx); err != nil {
		return err
	}
	for _, key := range models.DeviceLocalKeys {
		if v, ok := existing[key]; ok {
			if err := dst.Set(ctx, key, v); err != nil {
				return err
			}
		}
	}
	for _, key := range syncedKeys {
		v, ok := src[key]
		if !ok {
			continue
		}
		if err := dst.Set(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

func lastUpdate(ctx context.Context, backend store.SettingsBackend) (time.Time, bool, error) {
	v, err := backend.Get(ctx, models.SettingLastUpdate)
	if errors.Is(err, store.ErrSettingNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, ok := v.Timestamp()
	return t, ok, nil
}
