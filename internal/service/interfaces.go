// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LockoutController tracks failed passcode attempts and the resulting
// timeout lock.
type LockoutController interface {
	RecordFailure(ctx context.Context, now time.Time)
	RecordSuccess(ctx context.Context)
	CurrentLock(ctx context.Context, now time.Time) (time.Duration, bool)
	IsLocked(ctx context.Context, now time.Time) bool
	State(ctx context.Context) models.LockoutState
}

// DisplayPolicy decides what is rendered for a card PIN.
type DisplayPolicy interface {
	ResolveForDisplay(real string, decoys []string, cfg models.DisplayConfig) (models.DisplayResult, error)
	ResolveFakeMatches(digits string, decoys []string) map[string]string
	GenerateDecoy(length int) (string, error)
	GenerateDecoys(n, length int) ([]string, error)
	ConfigFromSettings(ctx context.Context) models.DisplayConfig
}

// SettingsBridge is the typed settings store shared by the lockout
// controller, the display policy and the API. It mirrors writes to an
// optional cloud replica while the local replica stays authoritative.
type SettingsBridge interface {
	Bool(ctx context.Context, key string) bool
	Int(ctx context.Context, key string) int
	Object(ctx context.Context, key string) (models.SettingValue, bool)
	Set(ctx context.Context, key string, value models.SettingValue) error
	Remove(ctx context.Context, key string) error

	SyncEnabled(ctx context.Context) bool
	ActivateSync(ctx context.Context, option models.MergeOption) error
	DeactivateSync(ctx context.Context) error
	LastUpdateResult(ctx context.Context) models.LastUpdateResult
	Synchronize(ctx context.Context) error
	Reset(ctx context.Context) error
}

// CardService manages cards and resolves entered digits to what is shown.
type CardService interface {
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	GetCard(ctx context.Context, digits string) (models.Card, error)
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	UpdateCard(ctx context.Context, digits string, update models.CardUpdate) (models.Card, error)
	DeleteCard(ctx context.Context, digits string) error
	Access(ctx context.Context, digits string) (models.AccessResult, error)
	Reset(ctx context.Context) error
}

// UnlockService runs the passcode entry flow and issues session tokens.
type UnlockService interface {
	Unlock(ctx context.Context, passcode string) (models.UnlockResult, error)
	ChangePasscode(ctx context.Context, newPasscode, currentPasscode string) error
	LockStatus(ctx context.Context) models.LockStatus
	ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error)
	ResetApp(ctx context.Context) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}

// SettingsSyncJob periodically reconciles the settings replicas.
type SettingsSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
