// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/go-chi/chi/v5"
)

// Card listings and single card reads never carry the PIN; it is only
// revealed through the access route.
func withoutPIN(card models.Card) models.Card {
	card.PIN = ""
	return card
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := cardFilterFromQuery(r)
	if err != nil {
		writeServiceError(w, log, err, "invalid card filter")
		return
	}

	cards, err := h.services.Cards.ListCards(r.Context(), filter)
	if err != nil {
		writeServiceError(w, log, err, "listing cards failed")
		return
	}

	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, withoutPIN(c))
	}

	if _, err = utils.WriteJSON(w, out, http.StatusOK); err != nil {
		log.Err(err).Msg("writing cards failed")
	}
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var card models.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		writeServiceError(w, log, ErrInvalidJSON, "decoding card failed")
		return
	}

	created, err := h.services.Cards.CreateCard(r.Context(), card)
	if err != nil {
		writeServiceError(w, log, err, "creating card failed")
		return
	}

	if _, err = utils.WriteJSON(w, withoutPIN(created), http.StatusCreated); err != nil {
		log.Err(err).Msg("writing created card failed")
	}
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	card, err := h.services.Cards.GetCard(r.Context(), chi.URLParam(r, "digits"))
	if err != nil {
		writeServiceError(w, log, err, "getting card failed")
		return
	}

	if _, err = utils.WriteJSON(w, withoutPIN(card), http.StatusOK); err != nil {
		log.Err(err).Msg("writing card failed")
	}
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.CardUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeServiceError(w, log, ErrInvalidJSON, "decoding card update failed")
		return
	}
	// last access is only recorded by the access route
	update.LastAccessed = nil

	updated, err := h.services.Cards.UpdateCard(r.Context(), chi.URLParam(r, "digits"), update)
	if err != nil {
		writeServiceError(w, log, err, "updating card failed")
		return
	}

	if _, err = utils.WriteJSON(w, withoutPIN(updated), http.StatusOK); err != nil {
		log.Err(err).Msg("writing updated card failed")
	}
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Cards.DeleteCard(r.Context(), chi.URLParam(r, "digits")); err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "deleting card failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) accessCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.Cards.Access(r.Context(), chi.URLParam(r, "digits"))
	if err != nil {
		writeServiceError(w, log, err, "card access failed")
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("writing access result failed")
	}
}

// cardFilterFromQuery reads ?search=, ?favorite=only|exclude and
// ?sort=order|lastAccessed.
func cardFilterFromQuery(r *http.Request) (models.CardFilter, error) {
	q := r.URL.Query()
	filter := models.CardFilter{Search: q.Get("search")}

	switch fav := q.Get("favorite"); fav {
	case "", "all":
		filter.Favorite = models.FavoriteAll
	case "only":
		filter.Favorite = models.FavoriteOnly
	case "exclude":
		filter.Favorite = models.FavoriteExclude
	default:
		return models.CardFilter{}, fmt.Errorf("%w: favorite=%q", service.ErrInvalidDataProvided, fav)
	}

	switch sort := q.Get("sort"); sort {
	case "":
		filter.SortBy = models.SortNone
	case "order":
		filter.SortBy = models.SortOrder
	case "lastAccessed":
		filter.SortBy = models.SortLastAccessed
	default:
		return models.CardFilter{}, fmt.Errorf("%w: sort=%q", service.ErrInvalidDataProvided, sort)
	}

	return filter, nil
}
