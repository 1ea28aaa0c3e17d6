// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/metrics"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
)

type unlockRequest struct {
	Passcode string `json:"passcode"`
}

type changePasscodeRequest struct {
	Passcode string `json:"passcode"`
	// Current is required once a passcode exists.
	Current string `json:"current,omitempty"`
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, log, ErrInvalidJSON, "decoding unlock request failed")
		return
	}

	result, err := h.services.Unlock.Unlock(r.Context(), req.Passcode)
	metrics.UnlockAttemptsTotal.WithLabelValues(unlockOutcome(err)).Inc()
	if err != nil {
		writeServiceError(w, log, err, "unlock refused")
		return
	}

	w.Header().Set("Authorization", "Bearer "+result.Token)
	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("writing unlock result failed")
	}
}

func unlockOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.UnlockSuccess
	case errors.Is(err, service.ErrWrongPasscode):
		return metrics.UnlockWrongPasscode
	case errors.Is(err, service.ErrLocked):
		return metrics.UnlockLocked
	case errors.Is(err, service.ErrNoPasscode):
		return metrics.UnlockNoPasscode
	default:
		return metrics.UnlockError
	}
}

func (h *Handler) changePasscode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req changePasscodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, log, ErrInvalidJSON, "decoding passcode request failed")
		return
	}

	if err := h.services.Unlock.ChangePasscode(r.Context(), req.Passcode, req.Current); err != nil {
		writeServiceError(w, log, err, "passcode was not changed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.Unlock.LockStatus(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing lock status failed")
	}
}

func (h *Handler) resetApp(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Unlock.ResetApp(r.Context()); err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "app reset failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
