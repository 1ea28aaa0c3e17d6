// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/go-chi/chi/v5"
)

// settingKinds lists the settings a client may change and the kind each one
// holds. Lockout bookkeeping (failed attempts, lock expiry) is readable but
// only written by the lockout controller.
var settingKinds = map[string]models.SettingKind{
	models.SettingBiometricID:        models.KindBool,
	models.SettingFakePin:            models.KindBool,
	models.SettingTimeoutLock:        models.KindBool,
	models.SettingPinDisplaySecurity: models.KindBool,
	models.SettingReversePin:         models.KindBool,
	models.SettingRandomPin:          models.KindBool,
	models.SettingMaxRetries:         models.KindInt,
	models.SettingTimeoutLength:      models.KindInt,
}

func settingKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, "key")
	if !slices.Contains(models.UserSettingKeys, key) {
		return "", fmt.Errorf("%w: %q", service.ErrUnknownSetting, key)
	}
	return key, nil
}

func writableSettingKey(r *http.Request) (string, error) {
	key, err := settingKey(r)
	if err != nil {
		return "", err
	}
	if _, ok := settingKinds[key]; !ok {
		return "", fmt.Errorf("%w: setting %q is read-only", service.ErrInvalidDataProvided, key)
	}
	return key, nil
}

func validateSetting(key string, value models.SettingValue) error {
	if value.Kind() != settingKinds[key] {
		return fmt.Errorf("%w: setting %q holds %s, got %q", service.ErrInvalidDataProvided, key, settingKinds[key], value.Kind())
	}
	if n, ok := value.Int(); ok && n < 1 {
		return fmt.Errorf("%w: setting %q must be positive", service.ErrInvalidDataProvided, key)
	}
	return nil
}

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	out := make(map[string]models.SettingValue, len(models.UserSettingKeys))
	for _, key := range models.UserSettingKeys {
		if value, ok := h.services.Settings.Object(ctx, key); ok {
			out[key] = value
		}
	}

	if _, err := utils.WriteJSON(w, out, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing settings failed")
	}
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := settingKey(r)
	if err != nil {
		writeServiceError(w, log, err, "unknown setting requested")
		return
	}

	value, ok := h.services.Settings.Object(r.Context(), key)
	if !ok {
		utils.WriteError(w, "setting is not set", http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, value, http.StatusOK); err != nil {
		log.Err(err).Msg("writing setting failed")
	}
}

func (h *Handler) putSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := writableSettingKey(r)
	if err != nil {
		writeServiceError(w, log, err, "setting cannot be written")
		return
	}

	var value models.SettingValue
	if err = json.NewDecoder(r.Body).Decode(&value); err != nil {
		writeServiceError(w, log, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "decoding setting failed")
		return
	}
	if err = validateSetting(key, value); err != nil {
		writeServiceError(w, log, err, "invalid setting value")
		return
	}

	if err = h.services.Settings.Set(r.Context(), key, value); err != nil {
		writeServiceError(w, log, err, "saving setting failed")
		return
	}

	if _, err = utils.WriteJSON(w, value, http.StatusOK); err != nil {
		log.Err(err).Msg("writing setting failed")
	}
}

func (h *Handler) deleteSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := writableSettingKey(r)
	if err != nil {
		writeServiceError(w, log, err, "setting cannot be removed")
		return
	}

	if err = h.services.Settings.Remove(r.Context(), key); err != nil {
		writeServiceError(w, log, err, "removing setting failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
