// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// Services is the assembled service layer. Every component receives its
// collaborators explicitly; nothing is looked up globally.
type Services struct {
	Credentials     CredentialStore
	Lockout         LockoutController
	Display         DisplayPolicy
	Settings        SettingsBridge
	Cards           CardService
	Unlock          UnlockService
	AppInfo         AppInfoService
	SettingsSyncJob SettingsSyncJob
}

// NewServices wires the service layer on storages. clock is injected so the
// lockout and settings stamps can be driven by tests.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, clock Clock, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build)
	if err != nil {
		return nil, err
	}

	settings := NewSettingsBridge(storages.LocalSettings, storages.CloudSettings, cfg.Lockout, clock, log)
	display := NewDisplayPolicy(settings)
	lockout := NewLockoutController(settings, log)
	credentials := NewCredentialStore(storages.Secrets, cfg.App, log)
	cards := NewCardValidationService().Wrap(NewCardService(storages.Cards, display, settings, clock, log))

	return &Services{
		Credentials:     credentials,
		Lockout:         lockout,
		Display:         display,
		Settings:        settings,
		Cards:           cards,
		Unlock:          NewUnlockService(credentials, lockout, settings, cards, clock, cfg.App, log),
		AppInfo:         appInfo,
		SettingsSyncJob: NewSettingsSyncJob(settings, log),
	}, nil
}
