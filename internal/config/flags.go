// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s secret store (bbolt) path
//	-d local database DSN
//	-cloud cloud settings replica DSN (postgres:// or redis://)
//	-c/-config json file path with configs
//	-hash-type default passcode hash type
//	-salt-length passcode salt length
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session duration (e.g., "15m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-retries default lockout threshold
//	-timeout-length default lockout length in minutes
//	-sync-interval settings sync interval (e.g., "1m")
//	-log-level zerolog level
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("pinkeeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var secretsPath, databaseDSN, cloudDSN string
	var jsonConfigPath string
	var hashType string
	var saltLength int
	var sessionSignKey, sessionIssuer string
	var sessionDuration, requestTimeout, syncInterval time.Duration
	var maxRetries, timeoutLength int
	var logLevel, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&secretsPath, "s", "", "Secret store path")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&cloudDSN, "cloud", "", "Cloud settings replica DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashType, "hash-type", "", "Default passcode hash type")
	fs.IntVar(&saltLength, "salt-length", 0, "Passcode salt length")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 15m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Default lockout threshold")
	fs.IntVar(&timeoutLength, "timeout-length", 0, "Default lockout length in minutes")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Settings sync interval (e.g., 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultHashType: hashType,
			SaltLength:      saltLength,
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			LogLevel:        logLevel,
			LogFile:         logFile,
		},
		Storage: Storage{
			SecretsPath: secretsPath,
			DB:          DB{DSN: databaseDSN},
			Cloud:       Cloud{DSN: cloudDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Lockout: Lockout{
			MaxRetries:    maxRetries,
			TimeoutLength: timeoutLength,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
