// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the settings sync worker when a cloud replica is
// configured. Without one there is nothing to reconcile.
func NewWorkers(services *service.Services, cfg config.StructuredConfig, log *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.Storage.Cloud.DSN != "" {
		w.workers = append(w.workers, newSettingsSyncWorker(services.SettingsSyncJob, cfg.Workers.SyncInterval))
		log.Info().Dur("interval", cfg.Workers.SyncInterval).Msg("settings sync worker registered")
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type settingsSyncWorker struct {
	job      service.SettingsSyncJob
	interval time.Duration
}

func newSettingsSyncWorker(job service.SettingsSyncJob, interval time.Duration) *settingsSyncWorker {
	return &settingsSyncWorker{job: job, interval: interval}
}

func (s *settingsSyncWorker) Run() {
	s.job.Start(context.Background(), s.interval)
}

func (s *settingsSyncWorker) Stop() {
	s.job.Stop()
}
