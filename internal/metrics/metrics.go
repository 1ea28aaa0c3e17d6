// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the vault. They are
// registered on the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pinkeeper"

// Unlock attempt outcomes.
const (
	UnlockSuccess       = "success"
	UnlockWrongPasscode = "wrong_passcode"
	UnlockLocked        = "locked"
	UnlockNoPasscode    = "no_passcode"
	UnlockError         = "error"
)

// Settings sync outcomes.
const (
	SyncOK    = "ok"
	SyncError = "error"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UnlockAttemptsTotal counts passcode entries by outcome.
	UnlockAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unlock_attempts_total",
			Help:      "Total number of passcode unlock attempts",
		},
		[]string{"result"},
	)

	// SettingsSyncTotal counts scheduled settings synchronizations.
	SettingsSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_sync_total",
			Help:      "Total number of scheduled settings synchronizations",
		},
		[]string{"result"},
	)
)
