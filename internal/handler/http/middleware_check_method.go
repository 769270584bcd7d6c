// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// For a path registered with other methods it answers 405 with a JSON error
// body and an Allow header listing the registered methods. Paths that match
// no route pattern get 404.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = &route
				break
			}
		}

		if found == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		allowed := make([]string, 0, len(found.Handlers))
		for method := range found.Handlers {
			allowed = append(allowed, method)
		}
		slices.Sort(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
