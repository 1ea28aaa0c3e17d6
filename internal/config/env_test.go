// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"APP_DEFAULT_HASH_TYPE",
	"APP_SALT_LENGTH",
	"APP_SESSION_SIGN_KEY",
	"APP_SESSION_ISSUER",
	"APP_SESSION_DURATION",
	"APP_VERSION",
	"APP_LOG_LEVEL",
	"APP_LOG_FILE",

	"STORAGE_SECRETS_PATH",
	"STORAGE_DB_DSN",
	"STORAGE_CLOUD_DSN",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"LOCKOUT_MAX_RETRIES",
	"LOCKOUT_TIMEOUT_LENGTH",

	"WORKERS_SYNC_INTERVAL",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEFAULT_HASH_TYPE": "argon2id",
		"APP_SALT_LENGTH":       "16",
		"APP_SESSION_SIGN_KEY":  "sign",
		"APP_SESSION_ISSUER":    "issuer",
		"APP_SESSION_DURATION":  "5m",
		"APP_VERSION":           "1.2.3",
		"APP_LOG_LEVEL":         "info",
		"APP_LOG_FILE":          "/tmp/pk.log",

		"STORAGE_SECRETS_PATH": "/var/lib/pk/secrets.db",
		"STORAGE_DB_DSN":       "/var/lib/pk/pk.db",
		"STORAGE_CLOUD_DSN":    "redis://localhost:6379/0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"LOCKOUT_MAX_RETRIES":    "5",
		"LOCKOUT_TIMEOUT_LENGTH": "10",

		"WORKERS_SYNC_INTERVAL": "2m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "argon2id", cfg.App.DefaultHashType)
	assert.Equal(t, 16, cfg.App.SaltLength)
	assert.Equal(t, "sign", cfg.App.SessionSignKey)
	assert.Equal(t, "issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 5*time.Minute, cfg.App.SessionDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/pk.log", cfg.App.LogFile)

	assert.Equal(t, "/var/lib/pk/secrets.db", cfg.Storage.SecretsPath)
	assert.Equal(t, "/var/lib/pk/pk.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.Cloud.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 5, cfg.Lockout.MaxRetries)
	assert.Equal(t, 10, cfg.Lockout.TimeoutLength)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "APP_SESSION_DURATION", "forever"},
		{"int", "LOCKOUT_MAX_RETRIES", "three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

// setEnvVars clears every variable the config reads and then applies vars.
// Original values are restored when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
