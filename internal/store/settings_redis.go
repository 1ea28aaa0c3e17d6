// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// settingsHashKey is the Redis hash holding every cloud setting. Each field is
// a setting key, each value "<kind>:<encoded value>".
const settingsHashKey = "pinkeeper:settings"

// RedisHashClient is the subset of *redis.Client the Redis replica uses.
type RedisHashClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSettingsRepository struct {
	client RedisHashClient
	logger *logger.Logger
}

// NewConnectRedis parses the cloud DSN, connects and pings the server.
func NewConnectRedis(ctx context.Context, cfg config.Cloud, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis DSN")
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to cloud redis successfully")

	return client, nil
}

// NewRedisSettingsRepository returns a [SettingsBackend] stored in one Redis
// hash.
func NewRedisSettingsRepository(client RedisHashClient, log *logger.Logger) SettingsBackend {
	log.Debug().Msg("creating redis settings repository")
	return &redisSettingsRepository{client: client, logger: log}
}

func (r *redisSettingsRepository) Name() string {
	return "cloud-redis"
}

func (r *redisSettingsRepository) Get(ctx context.Context, key string) (models.SettingValue, error) {
	raw, err := r.client.HGet(ctx, settingsHashKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return models.SettingValue{}, ErrSettingNotFound
	}
	if err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "redisSettingsRepository.Get").Str("key", key).Msg("failed to read setting")
		return models.SettingValue{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	value, err := decodeRedisValue(raw)
	if err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "redisSettingsRepository.Get").Str("key", key).Msg("failed to decode setting")
		return models.SettingValue{}, err
	}
	return value, nil
}

func (r *redisSettingsRepository) Set(ctx context.Context, key string, value models.SettingValue) error {
	kind, raw := value.Encode()
	if kind == "" {
		return fmt.Errorf("%w: empty setting value for %q", models.ErrUnknownSettingKind, key)
	}

	if err := r.client.HSet(ctx, settingsHashKey, key, string(kind)+":"+raw).Err(); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "redisSettingsRepository.Set").Str("key", key).Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *redisSettingsRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.HDel(ctx, settingsHashKey, key).Err(); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "redisSettingsRepository.Delete").Str("key", key).Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *redisSettingsRepository) All(ctx context.Context) (map[string]models.SettingValue, error) {
	log := r.logger.Ctx(ctx)

	fields, err := r.client.HGetAll(ctx, settingsHashKey).Result()
	if err != nil {
		log.Err(err).Str("func", "redisSettingsRepository.All").Msg("failed to read settings")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result := make(map[string]models.SettingValue, len(fields))
	for key, raw := range fields {
		value, err := decodeRedisValue(raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "redisSettingsRepository.All").Str("key", key).Msg("skipping undecodable setting")
			continue
		}
		result[key] = value
	}
	return result, nil
}

func (r *redisSettingsRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, settingsHashKey).Err(); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "redisSettingsRepository.Clear").Msg("failed to clear settings")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func decodeRedisValue(raw string) (models.SettingValue, error) {
	kind, value, ok := strings.Cut(raw, ":")
	if !ok {
		return models.SettingValue{}, fmt.Errorf("%w: missing kind tag", ErrCorruptedValue)
	}
	decoded, err := models.DecodeSettingValue(models.SettingKind(kind), value)
	if err != nil {
		return models.SettingValue{}, fmt.Errorf("%w: %w", ErrCorruptedValue, err)
	}
	return decoded, nil
}
