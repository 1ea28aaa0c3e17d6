// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnlock(t *testing.T) {
	expires := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		result     models.UnlockResult
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"passcode":"123456"}`,
			result:     models.UnlockResult{Token: "tok", ExpiresAt: expires},
			callsSvc:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong passcode",
			body:       `{"passcode":"000000"}`,
			err:        service.ErrWrongPasscode,
			callsSvc:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "locked",
			body:       `{"passcode":"123456"}`,
			err:        fmt.Errorf("%w: 00:42 remaining", service.ErrLocked),
			callsSvc:   true,
			wantStatus: http.StatusLocked,
		},
		{
			name:       "no passcode set",
			body:       `{"passcode":"123456"}`,
			err:        service.ErrNoPasscode,
			callsSvc:   true,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid json",
			body:       `{"passcode":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.callsSvc {
				f.unlock.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)
			}

			rec := f.do(t, http.MethodPost, "/api/unlock", tt.body, false)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUnlock_ReturnsToken(t *testing.T) {
	f := newHandlerFixture(t)
	expires := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)
	f.unlock.EXPECT().Unlock(gomock.Any(), "123456").
		Return(models.UnlockResult{Token: "tok", ExpiresAt: expires, Migrated: true}, nil)

	rec := f.do(t, http.MethodPost, "/api/unlock", `{"passcode":"123456"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))

	var got models.UnlockResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "tok", got.Token)
	assert.True(t, got.Migrated)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestUnlock_LockedReportsRemainingTime(t *testing.T) {
	f := newHandlerFixture(t)
	f.unlock.EXPECT().Unlock(gomock.Any(), "123456").
		Return(models.UnlockResult{}, fmt.Errorf("%w: 00:42 remaining", service.ErrLocked))

	rec := f.do(t, http.MethodPost, "/api/unlock", `{"passcode":"123456"}`, false)

	require.Equal(t, http.StatusLocked, rec.Code)
	assert.Contains(t, decodeError(t, rec), "00:42 remaining")
}

func TestChangePasscode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{"first passcode", `{"passcode":"123456"}`, nil, true, http.StatusNoContent},
		{"change", `{"passcode":"654321","current":"123456"}`, nil, true, http.StatusNoContent},
		{"bad current", `{"passcode":"654321","current":"000000"}`, service.ErrPasscodeNotChanged, true, http.StatusForbidden},
		{"locked", `{"passcode":"654321","current":"123456"}`, fmt.Errorf("%w: 00:30 remaining", service.ErrLocked), true, http.StatusLocked},
		{"invalid passcode", `{"passcode":"12"}`, service.ErrInvalidDataProvided, true, http.StatusBadRequest},
		{"invalid json", `not json`, nil, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.callsSvc {
				var req changePasscodeRequest
				require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
				f.unlock.EXPECT().ChangePasscode(gomock.Any(), req.Passcode, req.Current).Return(tt.err)
			}

			rec := f.do(t, http.MethodPost, "/api/passcode", tt.body, false)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLockStatus(t *testing.T) {
	f := newHandlerFixture(t)
	f.unlock.EXPECT().LockStatus(gomock.Any()).
		Return(models.LockStatus{Locked: true, Remaining: "00:30", RemainingSec: 30, FailureCount: 3})

	rec := f.do(t, http.MethodGet, "/api/lock", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.LockStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.LockStatus{Locked: true, Remaining: "00:30", RemainingSec: 30, FailureCount: 3}, got)
}

func TestResetApp(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorized()
	f.unlock.EXPECT().ResetApp(gomock.Any()).Return(nil)

	rec := f.do(t, http.MethodPost, "/api/reset", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResetApp_FailureHidesDetails(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorized()
	f.unlock.EXPECT().ResetApp(gomock.Any()).Return(fmt.Errorf("bolt: %w", assert.AnError))

	rec := f.do(t, http.MethodPost, "/api/reset", "", true)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec))
}
