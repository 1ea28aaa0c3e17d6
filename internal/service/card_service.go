// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type cardService struct {
	cards    store.CardRepository
	display  DisplayPolicy
	settings SettingsBridge
	clock    Clock
	logger   *logger.Logger
}

func NewCardService(cards store.CardRepository, display DisplayPolicy, settings SettingsBridge, clock Clock, log *logger.Logger) CardService {
	return &cardService{
		cards:    cards,
		display:  display,
		settings: settings,
		clock:    clock,
		logger:   log,
	}
}

// CreateCard stores a new card. Its decoy PINs are generated here, once, and
// never regenerated by later updates.
func (s *cardService) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := s.logger.Ctx(ctx)

	if len(card.DecoyPINs) == 0 {
		decoys, err := s.display.GenerateDecoys(models.DecoyCount, models.PinSize)
		if err != nil {
			log.Err(err).Str("func", "cardService.CreateCard").Msg("failed to generate decoy PINs")
			return models.Card{}, err
		}
		card.DecoyPINs = decoys
	}
	if card.Color == "" {
		card.Color = models.ColorDarkBlue
	}
	card.CreatedAt = s.clock.Now()

	created, err := s.cards.CreateCard(ctx, card)
	if err != nil {
		log.Err(err).Str("func", "cardService.CreateCard").Msg("failed to create card")
		return models.Card{}, err
	}

	log.Info().Str("card_id", created.ID.String()).Msg("card created")
	return created, nil
}

func (s *cardService) GetCard(ctx context.Context, digits string) (models.Card, error) {
	return s.cards.GetCardByDigits(ctx, digits)
}

func (s *cardService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	return s.cards.GetCards(ctx, filter)
}

func (s *cardService) UpdateCard(ctx context.Context, digits string, update models.CardUpdate) (models.Card, error) {
	card, err := s.cards.UpdateCard(ctx, digits, update)
	if err != nil {
		return models.Card{}, err
	}

	s.logger.Ctx(ctx).Info().Str("card_id", card.ID.String()).Msg("card updated")
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, digits string) error {
	if err := s.cards.DeleteCard(ctx, digits); err != nil {
		return err
	}

	s.logger.Ctx(ctx).Info().Msg("card deleted")
	return nil
}

// Access resolves digits entered on the access pad.
//
// Real cards win. Otherwise, while fakePin is on, digits that differ from a
// card only in the final digit resolve to that card's matching decoy PIN, so
// the result looks like a successful lookup. Anything else is
// [store.ErrCardNotFound].
func (s *cardService) Access(ctx context.Context, digits string) (models.AccessResult, error) {
	log := s.logger.Ctx(ctx)

	cfg := s.display.ConfigFromSettings(ctx)

	card, err := s.cards.GetCardByDigits(ctx, digits)
	switch {
	case err == nil:
		display, err := s.display.ResolveForDisplay(card.PIN, card.DecoyPINs, cfg)
		if err != nil {
			return models.AccessResult{}, err
		}

		now := s.clock.Now()
		if _, err := s.cards.UpdateCard(ctx, digits, models.CardUpdate{LastAccessed: &now}); err != nil {
			log.Warn().Err(err).Str("func", "cardService.Access").Msg("failed to touch last accessed")
		}

		return models.AccessResult{Digits: card.Digits, Name: card.Name, Display: display}, nil
	case !errors.Is(err, store.ErrCardNotFound):
		log.Err(err).Str("func", "cardService.Access").Msg("failed to look up card")
		return models.AccessResult{}, err
	}

	if !s.settings.Bool(ctx, models.SettingFakePin) {
		return models.AccessResult{}, store.ErrCardNotFound
	}

	cards, err := s.cards.GetCards(ctx, models.CardFilter{})
	if err != nil {
		log.Err(err).Str("func", "cardService.Access").Msg("failed to list cards")
		return models.AccessResult{}, err
	}

	// The oldest card wins when several share the entered prefix.
	slices.SortFunc(cards, func(a, b models.Card) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.Digits, b.Digits))
	})

	for _, c := range cards {
		decoy, ok := s.display.ResolveFakeMatches(c.Digits, c.DecoyPINs)[digits]
		if !ok {
			continue
		}

		others := slices.DeleteFunc(slices.Clone(c.DecoyPINs), func(d string) bool { return d == decoy })
		display, err := s.display.ResolveForDisplay(decoy, others, cfg)
		if err != nil {
			return models.AccessResult{}, err
		}

		log.Debug().Msg("decoy PIN served")
		return models.AccessResult{Digits: digits, Name: c.Name, Display: display}, nil
	}

	return models.AccessResult{}, store.ErrCardNotFound
}

func (s *cardService) Reset(ctx context.Context) error {
	if err := s.cards.Reset(ctx); err != nil {
		return fmt.Errorf("reset cards: %w", err)
	}
	return nil
}
