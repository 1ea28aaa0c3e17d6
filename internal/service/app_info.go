// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo
}

// NewAppInfoService reports cfg.Version as the application version and
// build for the linker-injected metadata.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
