// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

func executeAuth(h *Handler, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	var (
		owner  string
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		owner, _ = utils.GetOwnerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, SyncRoute, nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr, owner, called
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestAuth_TableTest(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantOwner  string
		wantMsg    string
	}{
		{
			name:       "static token maps to default owner",
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantOwner:  DefaultOwner,
		},
		{
			name:       "scheme is case-insensitive",
			header:     "bearer " + testToken,
			wantStatus: http.StatusOK,
			wantOwner:  DefaultOwner,
		},
		{
			name:       "signed JWT maps to its subject",
			header:     "Bearer " + signedToken(t, "alice", future, testSignKey),
			wantStatus: http.StatusOK,
			wantOwner:  "alice",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgNoAuthorizationHeader,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "token missing after scheme",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "wrong static token",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "expired JWT",
			header:     "Bearer " + signedToken(t, "alice", past, testSignKey),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpired,
		},
		{
			name:       "JWT signed with another key",
			header:     "Bearer " + signedToken(t, "alice", future, "other-key"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, owner, called := executeAuth(newTestHandler(&stubSyncService{}), tt.header)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, called)
				assert.Equal(t, tt.wantOwner, owner)
				return
			}
			assert.False(t, called, "next handler must not run")
			assert.Equal(t, tt.wantMsg, errorBody(t, rr))
		})
	}
}

func TestAuth_JWTRejectedWithoutSignKey(t *testing.T) {
	h := newTestHandler(&stubSyncService{})
	h.signKey = ""

	rr, _, called := executeAuth(h, "Bearer "+signedToken(t, "alice", time.Now().Add(time.Hour), testSignKey))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestAuthenticate_StaticTokenDisabled(t *testing.T) {
	h := newTestHandler(&stubSyncService{})
	h.staticToken = ""

	// пустой статический токен не должен совпадать с пустой строкой
	_, err := h.authenticate("")
	assert.ErrorIs(t, err, ErrTokenRejected)
}
