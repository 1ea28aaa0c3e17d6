// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/metrics"
)

const defaultSyncInterval = time.Minute

type settingsSyncJob struct {
	settings SettingsBridge
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSettingsSyncJob creates a job that calls settings.Synchronize on a
// ticker. The job is idle until Start is called.
func NewSettingsSyncJob(settings SettingsBridge, log *logger.Logger) SettingsSyncJob {
	return &settingsSyncJob{settings: settings, logger: log}
}

// Start stops any previously running job, then launches a goroutine that
// synchronizes every interval. A non-positive interval defaults to one
// minute. The goroutine exits when ctx is cancelled or Stop is called.
func (j *settingsSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.settings.Synchronize(jobCtx); err != nil {
					metrics.SettingsSyncTotal.WithLabelValues(metrics.SyncError).Inc()
					j.logger.Ctx(jobCtx).Warn().Err(err).Msg("scheduled settings sync failed")
					continue
				}
				metrics.SettingsSyncTotal.WithLabelValues(metrics.SyncOK).Inc()
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit. Safe to call when the
// job is not running.
func (j *settingsSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
