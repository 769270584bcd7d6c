// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/internal/app"
)

func newMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/items", ok)
	router.Put("/items", ok)
	router.Post("/submit", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered method passes", method: http.MethodGet, path: "/items", wantStatus: http.StatusOK},
		{name: "wrong method lists allowed ones", method: http.MethodDelete, path: "/items", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT"},
		{name: "GET on post-only route", method: http.MethodGet, path: "/submit", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path", method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newMethodRouter().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.Equal(t, app.MsgMethodNotAllowed, errorBody(t, rr))
			}
		})
	}
}

func TestCheckHTTPMethod_DirectCallUnknownPath(t *testing.T) {
	rr := httptest.NewRecorder()
	CheckHTTPMethod(newMethodRouter())(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
