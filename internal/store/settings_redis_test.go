// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// fakeRedis keeps hashes in memory and fails every call when err is set.
type fakeRedis struct {
	hashes map[string]map[string]string
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{hashes: make(map[string]map[string]string)}
}

func (f *fakeRedis) HGet(_ context.Context, key, field string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	if f.hashes[key] == nil {
		f.hashes[key] = make(map[string]string)
	}
	var n int64
	for i := 0; i+1 < len(values); i += 2 {
		f.hashes[key][fmt.Sprint(values[i])] = fmt.Sprint(values[i+1])
		n++
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) HDel(_ context.Context, key string, fields ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, field := range fields {
		delete(f.hashes[key], field)
	}
	return redis.NewIntResult(int64(len(fields)), nil)
}

func (f *fakeRedis) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	if f.err != nil {
		return redis.NewMapStringStringResult(nil, f.err)
	}
	out := make(map[string]string, len(f.hashes[key]))
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, k := range keys {
		delete(f.hashes, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisSettingsRepository_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	repo := NewRedisSettingsRepository(client, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, "cloud-redis", repo.Name())

	_, err := repo.Get(ctx, models.SettingRandomPin)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	require.NoError(t, repo.Set(ctx, models.SettingRandomPin, models.BoolValue(true)))
	require.NoError(t, repo.Set(ctx, models.SettingLastUpdate, models.TimestampValue(stamp)))

	assert.Equal(t, "bool:true", client.hashes[settingsHashKey][models.SettingRandomPin])

	got, err := repo.Get(ctx, models.SettingLastUpdate)
	require.NoError(t, err)
	ts, ok := got.Timestamp()
	require.True(t, ok)
	assert.True(t, ts.Equal(stamp))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, models.SettingRandomPin))
	_, err = repo.Get(ctx, models.SettingRandomPin)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, repo.Clear(ctx))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRedisSettingsRepository_CorruptedValues(t *testing.T) {
	client := newFakeRedis()
	client.hashes[settingsHashKey] = map[string]string{
		"noTag":   "true",
		"badInt":  "int:x",
		"goodInt": "int:4",
	}
	repo := NewRedisSettingsRepository(client, logger.Nop())
	ctx := context.Background()

	_, err := repo.Get(ctx, "noTag")
	assert.ErrorIs(t, err, ErrCorruptedValue)

	_, err = repo.Get(ctx, "badInt")
	assert.ErrorIs(t, err, ErrCorruptedValue)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRedisSettingsRepository_Unavailable(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("dial tcp: connection refused")
	repo := NewRedisSettingsRepository(client, logger.Nop())
	ctx := context.Background()

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Set(ctx, "k", models.IntValue(1)), ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, "k"), ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Clear(ctx), ErrStoreUnavailable)
	_, err = repo.All(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
