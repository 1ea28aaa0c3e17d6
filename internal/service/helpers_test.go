// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"maps"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// testClock is a settable [Clock].
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memSettings is an in-memory settings replica. Setting err makes every
// call through the [store.SettingsBackend] interface fail with it; put and
// peek always reach the map.
type memSettings struct {
	mu     sync.Mutex
	name   string
	values map[string]models.SettingValue
	err    error
}

func newMemSettings(name string) *memSettings {
	return &memSettings{name: name, values: map[string]models.SettingValue{}}
}

func (m *memSettings) Name() string { return m.name }

func (m *memSettings) Get(_ context.Context, key string) (models.SettingValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.SettingValue{}, m.err
	}
	v, ok := m.values[key]
	if !ok {
		return models.SettingValue{}, store.ErrSettingNotFound
	}
	return v, nil
}

func (m *memSettings) Set(_ context.Context, key string, value models.SettingValue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func (m *memSettings) All(_ context.Context) (map[string]models.SettingValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return maps.Clone(m.values), nil
}

func (m *memSettings) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	clear(m.values)
	return nil
}

func (m *memSettings) setErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *memSettings) put(key string, v models.SettingValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = v
}

func (m *memSettings) peek(key string) (models.SettingValue, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

var testLockoutDefaults = config.Lockout{MaxRetries: 3, TimeoutLength: 1}

// newTestBridge builds a bridge on in-memory replicas. cloud may be nil.
func newTestBridge(local, cloud *memSettings, clock Clock) SettingsBridge {
	var cloudBackend store.SettingsBackend
	if cloud != nil {
		cloudBackend = cloud
	}
	return NewSettingsBridge(local, cloudBackend, testLockoutDefaults, clock, logger.Nop())
}

func newTestSecrets(t *testing.T) *store.BoltSecretStore {
	t.Helper()
	s, err := store.NewBoltSecretStore(filepath.Join(t.TempDir(), "secrets.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestCardRepository(t *testing.T) store.CardRepository {
	t.Helper()
	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "pk.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return store.NewCardRepository(db, logger.Nop())
}

var testT0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
