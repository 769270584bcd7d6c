// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	SyncRoute    = "/api/v1/sync"
	VersionRoute = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGzipRequest, withCompressedResponses())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get(VersionRoute, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post(SyncRoute, h.sync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
