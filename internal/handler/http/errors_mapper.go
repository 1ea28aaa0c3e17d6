// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
)

// errorStatuses is checked in order, so wrapped errors resolve to the first
// listed sentinel they match.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUnknownSetting, http.StatusNotFound},
	{service.ErrWrongPasscode, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrPasscodeNotChanged, http.StatusForbidden},
	{service.ErrNoPasscode, http.StatusConflict},
	{service.ErrLocked, http.StatusLocked},
	{service.ErrCloudNotConfigured, http.StatusConflict},
	{service.ErrCloudUnavailable, http.StatusServiceUnavailable},
	{service.ErrSettingsUnavailable, http.StatusServiceUnavailable},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{store.ErrCardNotFound, http.StatusNotFound},
	{store.ErrCardDigitsTaken, http.StatusConflict},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{store.ErrCorruptedValue, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Server side
// failures are logged as errors and hide their details from the client.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
