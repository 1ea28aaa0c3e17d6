// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/validators"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// CardServiceWrapper defines middleware composition for CardService.
// Implementations wrap an existing CardService to add behavior such as
// validation.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}

// CardValidationService rejects malformed input with
// [ErrInvalidDataProvided] before it reaches the wrapped [CardService].
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService() CardServiceWrapper {
	return &CardValidationService{
		validator: validators.NewCardValidator(),
	}
}

func (v *CardValidationService) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	if err := v.validator.Validate(ctx, card); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateCard(ctx, card)
}

func (v *CardValidationService) GetCard(ctx context.Context, digits string) (models.Card, error) {
	if err := v.validator.Validate(ctx, digits); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetCard(ctx, digits)
}

func (v *CardValidationService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	return v.inner.ListCards(ctx, filter)
}

func (v *CardValidationService) UpdateCard(ctx context.Context, digits string, update models.CardUpdate) (models.Card, error) {
	if err := v.validator.Validate(ctx, digits); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateCard(ctx, digits, update)
}

func (v *CardValidationService) DeleteCard(ctx context.Context, digits string) error {
	if err := v.validator.Validate(ctx, digits); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteCard(ctx, digits)
}

func (v *CardValidationService) Access(ctx context.Context, digits string) (models.AccessResult, error) {
	if err := v.validator.Validate(ctx, digits); err != nil {
		return models.AccessResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Access(ctx, digits)
}

func (v *CardValidationService) Reset(ctx context.Context) error {
	return v.inner.Reset(ctx)
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.inner = inner
	return v
}
