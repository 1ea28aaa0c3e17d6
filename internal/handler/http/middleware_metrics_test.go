// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-pin-keeper/internal/metrics"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorized()
	f.cards.EXPECT().Access(gomock.Any(), "4242").Return(models.AccessResult{Digits: "4242"}, nil)

	byPattern := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/access/{digits}", "200")
	before := testutil.ToFloat64(byPattern)

	rec := f.do(t, http.MethodGet, "/api/access/4242", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(byPattern))
}

func TestWithMetrics_UnmatchedRoute(t *testing.T) {
	f := newHandlerFixture(t)

	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(unmatched)

	f.do(t, http.MethodGet, "/api/nowhere", "", false)

	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}

func TestUnlock_CountsOutcome(t *testing.T) {
	f := newHandlerFixture(t)
	f.unlock.EXPECT().Unlock(gomock.Any(), "123456").
		Return(models.UnlockResult{}, fmt.Errorf("%w: 00:10 remaining", service.ErrLocked))

	locked := metrics.UnlockAttemptsTotal.WithLabelValues(metrics.UnlockLocked)
	before := testutil.ToFloat64(locked)

	f.do(t, http.MethodPost, "/api/unlock", `{"passcode":"123456"}`, false)

	assert.Equal(t, before+1, testutil.ToFloat64(locked))
}

func TestUnlockOutcome(t *testing.T) {
	assert.Equal(t, metrics.UnlockSuccess, unlockOutcome(nil))
	assert.Equal(t, metrics.UnlockWrongPasscode, unlockOutcome(service.ErrWrongPasscode))
	assert.Equal(t, metrics.UnlockLocked, unlockOutcome(fmt.Errorf("%w: 00:01 remaining", service.ErrLocked)))
	assert.Equal(t, metrics.UnlockNoPasscode, unlockOutcome(service.ErrNoPasscode))
	assert.Equal(t, metrics.UnlockError, unlockOutcome(assert.AnError))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	metrics.UnlockAttemptsTotal.WithLabelValues(metrics.UnlockSuccess).Add(0)

	rec := f.do(t, http.MethodGet, "/metrics", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pinkeeper_unlock_attempts_total")
}
