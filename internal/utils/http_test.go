// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "map", data: map[string]string{"key": "value"}, status: http.StatusOK, wantBody: `{"key":"value"}`},
		{name: "custom status", data: map[string]string{"error": "not found"}, status: http.StatusNotFound, wantBody: `{"error":"not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "empty struct", data: struct{}{}, status: http.StatusOK, wantBody: "{}"},
		{name: "slice", data: []int{1, 2, 3}, status: http.StatusOK, wantBody: "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "token is expired", http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"token is expired"}`, w.Body.String())
}
