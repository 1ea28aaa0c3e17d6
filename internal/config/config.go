// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pin-keeper application. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds passcode hashing defaults, session token parameters and
	// logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the secret store, the local database and
	// the optional cloud settings replica.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Lockout holds the defaults used when the corresponding settings have
	// never been written.
	Lockout Lockout `envPrefix:"LOCKOUT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultHashType is the algorithm used for new passcode records and the
	// target of the opportunistic migration after a successful unlock.
	// Env: APP_DEFAULT_HASH_TYPE
	DefaultHashType string `env:"DEFAULT_HASH_TYPE"`

	// SaltLength is the salt length used for new passcode records.
	// Env: APP_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH"`

	// SessionSignKey signs and verifies session tokens issued on unlock.
	// Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session stays valid after unlock.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile, when set, redirects logs from stdout to the given file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// SecretsPath is the bbolt file holding the passcode record.
	// Env: STORAGE_SECRETS_PATH
	SecretsPath string `env:"SECRETS_PATH"`

	// DB holds the local SQLite database settings (settings and cards).
	DB DB `envPrefix:"DB_"`

	// Cloud holds the optional settings replica. An empty DSN disables
	// cloud sync entirely.
	Cloud Cloud `envPrefix:"CLOUD_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is a SQLite file path or DSN (e.g. "pinkeeper/pinkeeper.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cloud holds connection settings for the cloud settings replica.
type Cloud struct {
	// DSN selects the backend by scheme: "postgres://" / "postgresql://" for
	// PostgreSQL, "redis://" / "rediss://" for Redis.
	// Env: STORAGE_CLOUD_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the local HTTP API, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Lockout holds fallback values for the lockout settings.
type Lockout struct {
	// MaxRetries is the number of failures that triggers a lock.
	// Env: LOCKOUT_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// TimeoutLength is the lock duration in minutes.
	// Env: LOCKOUT_TIMEOUT_LENGTH
	TimeoutLength int `env:"TIMEOUT_LENGTH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the settings replicas are reconciled.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultHashType: "sha256",
			SaltLength:      12,
			SessionIssuer:   "go-pin-keeper",
			SessionDuration: 15 * time.Minute,
			Version:         "dev",
			LogLevel:        "debug",
		},
		Storage: Storage{
			SecretsPath: "pinkeeper/secrets.db",
			DB:          DB{DSN: "pinkeeper/pinkeeper.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Lockout: Lockout{
			MaxRetries:    3,
			TimeoutLength: 1,
		},
		Workers: Workers{
			SyncInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
