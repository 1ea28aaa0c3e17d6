// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretStore is the keychain the credential record lives in.
//
// Get returns [ErrSecretNotFound] for absent keys. Every Set replaces the
// whole value atomically.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SettingsBackend is one replica of the settings key-value store.
//
// Get returns [ErrSettingNotFound] for absent keys. All returns every stored
// key, including bookkeeping keys such as lastUpdate.
type SettingsBackend interface {
	Name() string
	Get(ctx context.Context, key string) (models.SettingValue, error)
	Set(ctx context.Context, key string, value models.SettingValue) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) (map[string]models.SettingValue, error)
	Clear(ctx context.Context) error
}

// CardRepository persists cards keyed by their unique digits.
//
// Lookups of unknown digits return [ErrCardNotFound]; inserting or renaming
// onto digits already in use returns [ErrCardDigitsTaken].
type CardRepository interface {
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	GetCardByDigits(ctx context.Context, digits string) (models.Card, error)
	GetCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	UpdateCard(ctx context.Context, digits string, update models.CardUpdate) (models.Card, error)
	DeleteCard(ctx context.Context, digits string) error
	DigitsExist(ctx context.Context, digits string) (bool, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}
