// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getVersion)
		r.Handle("/metrics", promhttp.Handler())
		r.Get("/api/lock", h.lockStatus)
		r.Post("/api/unlock", h.unlock)
		r.Post("/api/passcode", h.changePasscode)
	})

	// routes that need an unlocked session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/cards", h.listCards)
		r.Post("/api/cards", h.createCard)
		r.Get("/api/cards/{digits}", h.getCard)
		r.Put("/api/cards/{digits}", h.updateCard)
		r.Delete("/api/cards/{digits}", h.deleteCard)
		r.Get("/api/access/{digits}", h.accessCard)

		r.Get("/api/settings", h.listSettings)
		r.Get("/api/settings/{key}", h.getSetting)
		r.Put("/api/settings/{key}", h.putSetting)
		r.Delete("/api/settings/{key}", h.deleteSetting)

		r.Get("/api/sync", h.syncStatus)
		r.Post("/api/sync", h.synchronize)
		r.Post("/api/sync/activate", h.activateSync)
		r.Post("/api/sync/deactivate", h.deactivateSync)

		r.Post("/api/reset", h.resetApp)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
