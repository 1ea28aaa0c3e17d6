// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDigits targets the trailing card digits identifying a card.
	FieldDigits = "digits"

	// FieldPIN targets the real card PIN.
	FieldPIN = "pin"

	// FieldDecoys targets the persisted decoy PINs.
	FieldDecoys = "decoys"

	// FieldOrder targets the manual sort position.
	FieldOrder = "order"

	// FieldColor targets the card color.
	FieldColor = "color"
)

// AllowedColors is the palette offered by the client. An empty color is
// accepted and replaced by the default on creation.
var AllowedColors = []string{
	models.ColorDarkBlue,
	models.ColorLightBlue,
	models.ColorRed,
	models.ColorGold,
	models.ColorSilver,
	models.ColorBlack,
	models.ColorGreen,
}

// CardValidator validates [models.Card], [models.CardUpdate] and bare digit
// strings used to address a card.
type CardValidator struct{}

func NewCardValidator() Validator {
	return &CardValidator{}
}

func (v *CardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Card:
		return v.validateCard(value, fields...)
	case *models.Card:
		return v.validateCard(*value, fields...)

	case models.CardUpdate:
		return v.validateCardUpdate(value)
	case *models.CardUpdate:
		return v.validateCardUpdate(*value)

	case string:
		if !isDigits(value, models.DigitsSize) {
			return ErrInvalidDigits
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *CardValidator) validateCard(card models.Card, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDigits, FieldPIN, FieldDecoys, FieldOrder, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldDigits:
			if !isDigits(card.Digits, models.DigitsSize) {
				return ErrInvalidDigits
			}
		case FieldPIN:
			if !isDigits(card.PIN, models.PinSize) {
				return ErrInvalidPIN
			}
		case FieldDecoys:
			for _, d := range card.DecoyPINs {
				if !isDigits(d, models.PinSize) {
					return ErrInvalidDecoys
				}
			}
		case FieldOrder:
			if card.Order < 0 {
				return ErrInvalidOrder
			}
		case FieldColor:
			if !validColor(card.Color) {
				return ErrInvalidColor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardValidator) validateCardUpdate(update models.CardUpdate) error {
	if update.Digits == nil && update.PIN == nil && update.Name == nil && update.Order == nil &&
		update.Favorite == nil && update.LastAccessed == nil && update.Color == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Digits != nil && !isDigits(*update.Digits, models.DigitsSize) {
		return ErrInvalidDigits
	}
	if update.PIN != nil && !isDigits(*update.PIN, models.PinSize) {
		return ErrInvalidPIN
	}
	if update.Order != nil && *update.Order < 0 {
		return ErrInvalidOrder
	}
	if update.Color != nil && !validColor(*update.Color) {
		return ErrInvalidColor
	}

	return nil
}

// ValidatePasscode checks the application passcode format.
func ValidatePasscode(passcode string) error {
	if !isDigits(passcode, models.PasscodeSize) {
		return ErrInvalidPasscode
	}
	return nil
}

func validColor(color string) bool {
	return color == "" || slices.Contains(AllowedColors, color)
}

func isDigits(s string, size int) bool {
	if len(s) != size {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
