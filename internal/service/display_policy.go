// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// displayPolicy is the concrete implementation of [DisplayPolicy]. All
// randomness comes from crypto/rand.
type displayPolicy struct {
	settings SettingsBridge
}

func NewDisplayPolicy(settings SettingsBridge) DisplayPolicy {
	return &displayPolicy{settings: settings}
}

// ResolveForDisplay returns the codes to render for real.
//
// Without randomization the result is real alone, reversed when configured.
// With randomization it holds real plus [models.DisplaySlots] decoys taken
// in order from decoys, topped up with fresh ones when too few are stored,
// in a uniformly shuffled order.
func (p *displayPolicy) ResolveForDisplay(real string, decoys []string, cfg models.DisplayConfig) (models.DisplayResult, error) {
	shown := real
	if cfg.Reverse {
		shown = reverse(real)
	}

	if !cfg.Randomize {
		return models.DisplayResult{Codes: []string{shown}, RealIndex: 0}, nil
	}

	picked := make([]string, 0, models.DisplaySlots)
	for _, d := range decoys {
		if len(picked) == models.DisplaySlots {
			break
		}
		picked = append(picked, d)
	}
	if missing := models.DisplaySlots - len(picked); missing > 0 {
		fresh, err := p.GenerateDecoys(missing, len(real))
		if err != nil {
			return models.DisplayResult{}, err
		}
		picked = append(picked, fresh...)
	}

	// Shuffle indexes rather than strings so the real code can be found even
	// when a decoy collides with it.
	order := make([]int, 0, models.DisplaySlots+1)
	for i := 0; i <= models.DisplaySlots; i++ {
		order = append(order, i)
	}
	if err := utils.Shuffle(order); err != nil {
		return models.DisplayResult{}, fmt.Errorf("shuffle display codes: %w", err)
	}

	result := models.DisplayResult{Codes: make([]string, len(order))}
	for pos, idx := range order {
		if idx == 0 {
			result.Codes[pos] = shown
			result.RealIndex = pos
			continue
		}
		result.Codes[pos] = picked[idx-1]
	}
	return result, nil
}

// ResolveFakeMatches builds the fake-PIN lookup for one card: every wrong
// final digit, in ascending order with the true one skipped, maps
// prefix+digit to decoys[i]. The mapping stops when decoys run out, so the
// same wrong entry always yields the same decoy.
func (p *displayPolicy) ResolveFakeMatches(digits string, decoys []string) map[string]string {
	matches := make(map[string]string)
	if digits == "" {
		return matches
	}

	prefix, last := digits[:len(digits)-1], digits[len(digits)-1]

	i := 0
	for d := byte('0'); d <= '9' && i < len(decoys); d++ {
		if d == last {
			continue
		}
		matches[prefix+string(d)] = decoys[i]
		i++
	}
	return matches
}

// GenerateDecoy returns a uniformly random zero-padded decimal string.
func (p *displayPolicy) GenerateDecoy(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: decoy length %d", ErrInvalidDataProvided, length)
	}
	return utils.RandomDigits(length)
}

func (p *displayPolicy) GenerateDecoys(n, length int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d decoys", ErrInvalidDataProvided, n)
	}

	decoys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d, err := p.GenerateDecoy(length)
		if err != nil {
			return nil, err
		}
		decoys = append(decoys, d)
	}
	return decoys, nil
}

// ConfigFromSettings reads the display flags live. Reverse and randomize
// only apply while pinDisplaySecurity is on.
func (p *displayPolicy) ConfigFromSettings(ctx context.Context) models.DisplayConfig {
	if !p.settings.Bool(ctx, models.SettingPinDisplaySecurity) {
		return models.DisplayConfig{}
	}
	return models.DisplayConfig{
		Reverse:   p.settings.Bool(ctx, models.SettingReversePin),
		Randomize: p.settings.Bool(ctx, models.SettingRandomPin),
	}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
