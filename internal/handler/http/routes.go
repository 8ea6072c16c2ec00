// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the complete route tree. Tracing, access logging and gzip apply
// to every request; the session-auth middleware guards everything except
// registration and login.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes behind session verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/session", h.session)
		r.Post("/api/user/deactivate", h.deactivate)

		r.Route("/api/transactions", func(r chi.Router) {
			r.Get("/", h.listTransactions)
			r.Post("/", h.addTransaction)
			r.Put("/{id}", h.updateTransaction)
			r.Delete("/{id}", h.deleteTransaction)
		})

		r.Route("/api/assets", func(r chi.Router) {
			r.Get("/", h.listAssets)
			r.Post("/", h.addAsset)
			r.Put("/{id}", h.updateAsset)
			r.Delete("/{id}", h.deleteAsset)
		})

		r.Route("/api/liabilities", func(r chi.Router) {
			r.Get("/", h.listLiabilities)
			r.Post("/", h.addLiability)
			r.Put("/{id}", h.updateLiability)
			r.Delete("/{id}", h.deleteLiability)
		})

		r.Route("/api/budget", func(r chi.Router) {
			r.Get("/", h.listBudgetEntries)
			r.Post("/", h.saveBudgetEntry)
			r.Delete("/{id}", h.deleteBudgetEntry)
		})

		r.Route("/api/preferences", func(r chi.Router) {
			r.Get("/", h.listPreferences)
			r.Post("/", h.setPreference)
		})

		r.Get("/api/networth", h.netWorth)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
