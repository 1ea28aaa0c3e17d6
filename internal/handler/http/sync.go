// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type activateSyncRequest struct {
	Option models.MergeOption `json:"option"`
}

func (h *Handler) writeSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := models.SyncStatus{
		Enabled:    h.services.Settings.SyncEnabled(ctx),
		LastUpdate: h.services.Settings.LastUpdateResult(ctx),
	}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing sync status failed")
	}
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	h.writeSyncStatus(w, r)
}

func (h *Handler) synchronize(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Settings.Synchronize(r.Context()); err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "settings synchronization failed")
		return
	}

	h.writeSyncStatus(w, r)
}

func (h *Handler) activateSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req activateSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, log, ErrInvalidJSON, "decoding sync request failed")
		return
	}

	if err := h.services.Settings.ActivateSync(r.Context(), req.Option); err != nil {
		writeServiceError(w, log, err, "activating sync failed")
		return
	}

	h.writeSyncStatus(w, r)
}

func (h *Handler) deactivateSync(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Settings.DeactivateSync(r.Context()); err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "deactivating sync failed")
		return
	}

	h.writeSyncStatus(w, r)
}
