// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"testing"

	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDecoys = []string{"1111", "2222", "3333", "4444", "5555", "6666", "7777", "8888", "9999"}

func newTestDisplayPolicy() (DisplayPolicy, SettingsBridge) {
	bridge := newTestBridge(newMemSettings("local"), nil, newTestClock(testT0))
	return NewDisplayPolicy(bridge), bridge
}

func TestDisplayPolicy_PlainAndReversed(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got, err := p.ResolveForDisplay("1234", testDecoys, models.DisplayConfig{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1234"}, got.Codes)
	assert.Equal(t, 0, got.RealIndex)

	got, err = p.ResolveForDisplay("1234", testDecoys, models.DisplayConfig{Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"4321"}, got.Codes)
}

func TestDisplayPolicy_RandomizedUsesStoredDecoysInOrder(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got, err := p.ResolveForDisplay("1234", testDecoys, models.DisplayConfig{Randomize: true})
	require.NoError(t, err)

	require.Len(t, got.Codes, models.DisplaySlots+1)
	assert.Equal(t, "1234", got.Codes[got.RealIndex])

	others := slices.Delete(slices.Clone(got.Codes), got.RealIndex, got.RealIndex+1)
	assert.ElementsMatch(t, testDecoys[:models.DisplaySlots], others)
}

func TestDisplayPolicy_RandomizedAndReversed(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got, err := p.ResolveForDisplay("1234", testDecoys, models.DisplayConfig{Randomize: true, Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, "4321", got.Codes[got.RealIndex])
}

func TestDisplayPolicy_RandomizedTopsUpMissingDecoys(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got, err := p.ResolveForDisplay("1234", []string{"1111", "2222"}, models.DisplayConfig{Randomize: true})
	require.NoError(t, err)

	require.Len(t, got.Codes, models.DisplaySlots+1)
	assert.Contains(t, got.Codes, "1111")
	assert.Contains(t, got.Codes, "2222")
	for _, c := range got.Codes {
		assert.Len(t, c, models.PinSize)
	}
}

func TestDisplayPolicy_RealPositionIsSpread(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	seen := make([]int, models.DisplaySlots+1)
	for i := 0; i < 500; i++ {
		got, err := p.ResolveForDisplay("1234", testDecoys, models.DisplayConfig{Randomize: true})
		require.NoError(t, err)
		seen[got.RealIndex]++
	}

	for pos, n := range seen {
		assert.Positive(t, n, "real PIN never shown at position %d", pos)
	}
}

func TestDisplayPolicy_ResolveFakeMatches(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got := p.ResolveFakeMatches("1234", testDecoys)

	assert.Equal(t, map[string]string{
		"1230": "1111",
		"1231": "2222",
		"1232": "3333",
		"1233": "4444",
		"1235": "5555",
		"1236": "6666",
		"1237": "7777",
		"1238": "8888",
		"1239": "9999",
	}, got)
	assert.NotContains(t, got, "1234")

	assert.Equal(t, got, p.ResolveFakeMatches("1234", testDecoys), "same input, same mapping")
}

func TestDisplayPolicy_ResolveFakeMatchesStopsWhenDecoysRunOut(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	got := p.ResolveFakeMatches("5670", []string{"1111", "2222", "3333"})
	assert.Equal(t, map[string]string{"5671": "1111", "5672": "2222", "5673": "3333"}, got)

	assert.Empty(t, p.ResolveFakeMatches("", testDecoys))
	assert.Empty(t, p.ResolveFakeMatches("1234", nil))
}

func TestDisplayPolicy_GenerateDecoys(t *testing.T) {
	p, _ := newTestDisplayPolicy()

	decoys, err := p.GenerateDecoys(models.DecoyCount, models.PinSize)
	require.NoError(t, err)
	require.Len(t, decoys, models.DecoyCount)
	for _, d := range decoys {
		assert.Regexp(t, `^[0-9]{4}$`, d)
	}

	none, err := p.GenerateDecoys(0, models.PinSize)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = p.GenerateDecoys(-1, models.PinSize)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = p.GenerateDecoy(0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDisplayPolicy_ConfigFromSettings(t *testing.T) {
	p, bridge := newTestDisplayPolicy()
	ctx := context.Background()

	assert.Equal(t, models.DisplayConfig{}, p.ConfigFromSettings(ctx))

	require.NoError(t, bridge.Set(ctx, models.SettingReversePin, models.BoolValue(true)))
	require.NoError(t, bridge.Set(ctx, models.SettingRandomPin, models.BoolValue(true)))
	assert.Equal(t, models.DisplayConfig{}, p.ConfigFromSettings(ctx), "flags only apply with display security on")

	require.NoError(t, bridge.Set(ctx, models.SettingPinDisplaySecurity, models.BoolValue(true)))
	assert.Equal(t, models.DisplayConfig{Reverse: true, Randomize: true}, p.ConfigFromSettings(ctx))

	require.NoError(t, bridge.Set(ctx, models.SettingRandomPin, models.BoolValue(false)))
	assert.Equal(t, models.DisplayConfig{Reverse: true}, p.ConfigFromSettings(ctx))
}
