// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// postSync calls the handler directly with an owner already in the context.
func postSync(h *Handler, owner, contentType string, body []byte) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, SyncRoute, bytes.NewReader(body)))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if owner != "" {
		req = req.WithContext(context.WithValue(req.Context(), utils.OwnerCtxKey, owner))
	}

	rr := httptest.NewRecorder()
	h.sync(rr, req)
	return rr
}

func encodeRequest(t *testing.T, req models.SyncRequest) []byte {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return raw
}

func TestSync_PassesOwnerAndRequest(t *testing.T) {
	serverTime := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubSyncService{resp: models.SyncResponse{
		ServerTime: serverTime,
		Changes:    []models.SyncRecord{},
		Conflicts:  []uuid.UUID{},
	}}
	device := uuid.New()

	rr := postSync(newTestHandler(stub), "alice", "application/json; charset=utf-8",
		encodeRequest(t, models.SyncRequest{DeviceID: device, Changes: []models.SyncRecord{}}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice", stub.owner)
	assert.Equal(t, device, stub.req.DeviceID)
	assert.Nil(t, stub.req.LastSync)

	var resp models.SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.ServerTime.Equal(serverTime))
}

func TestSync_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		owner       string
		contentType string
		body        string
		svcErr      error
		wantStatus  int
		wantMsg     string
	}{
		{
			name:        "no owner",
			contentType: "application/json",
			body:        `{}`,
			wantStatus:  http.StatusUnauthorized,
			wantMsg:     app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "form body",
			owner:       "alice",
			contentType: "application/x-www-form-urlencoded",
			body:        `a=b`,
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMsg:     app.MsgUnsupportedContentType,
		},
		{
			name:       "missing content type",
			owner:      "alice",
			body:       `{}`,
			wantStatus: http.StatusUnsupportedMediaType,
			wantMsg:    app.MsgUnsupportedContentType,
		},
		{
			name:        "broken JSON",
			owner:       "alice",
			contentType: "application/json",
			body:        `{"changes":[`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     app.MsgInvalidDataProvided,
		},
		{
			name:        "unknown record type",
			owner:       "alice",
			contentType: "application/json",
			body:        `{"changes":[{"type":"folder","id":"x"}]}`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     app.MsgInvalidDataProvided,
		},
		{
			name:        "validation failure",
			owner:       "alice",
			contentType: "application/json",
			body:        `{"changes":[]}`,
			svcErr:      service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     app.MsgInvalidDataProvided,
		},
		{
			name:        "internal failure hides details",
			owner:       "alice",
			contentType: "application/json",
			body:        `{"changes":[]}`,
			svcErr:      errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantMsg:     app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postSync(newTestHandler(&stubSyncService{err: tt.svcErr}), tt.owner, tt.contentType, []byte(tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, rr))
			assert.NotContains(t, rr.Body.String(), "disk on fire")
		})
	}
}

func TestSync_RealServerRejectsInvalidRecord(t *testing.T) {
	h, _ := newRealHandler(t)

	task := models.NewTask("   ", uuid.New())
	rr := postSync(h, "alice", "application/json",
		encodeRequest(t, models.SyncRequest{DeviceID: uuid.New(), Changes: []models.SyncRecord{models.TaskRecord(task)}}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, errorBody(t, rr))
}

func TestSync_RealServerRoundTripThroughRouter(t *testing.T) {
	h, clk := newRealHandler(t)
	router := h.Init()

	list := models.NewList("Work")
	list.CreatedAt, list.UpdatedAt = testNow, testNow
	task := models.NewTask("write report", list.ID)
	task.CreatedAt, task.UpdatedAt = testNow, testNow

	send := func(token string, req models.SyncRequest) models.SyncResponse {
		r := httptest.NewRequest(http.MethodPost, SyncRoute, bytes.NewReader(encodeRequest(t, req)))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, r)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp models.SyncResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	first := send(testToken, models.SyncRequest{
		DeviceID: uuid.New(),
		Changes:  []models.SyncRecord{models.ListRecord(list), models.TaskRecord(task)},
	})
	assert.Empty(t, first.Changes, "own changes are not echoed")

	clk.Advance(time.Minute)
	second := send(testToken, models.SyncRequest{DeviceID: uuid.New(), Changes: []models.SyncRecord{}})
	require.Len(t, second.Changes, 2)
	assert.Equal(t, models.KindList, second.Changes[0].Kind)
	assert.Equal(t, models.KindTask, second.Changes[1].Kind)
	assert.True(t, second.ServerTime.After(first.ServerTime))

	// другой владелец (JWT subject) не видит чужие данные
	bob := signedToken(t, "bob", time.Now().Add(time.Hour), testSignKey)
	other := send(bob, models.SyncRequest{DeviceID: uuid.New(), Changes: []models.SyncRecord{}})
	assert.Empty(t, other.Changes)
}

func TestSync_GzipResponse(t *testing.T) {
	stub := &stubSyncService{resp: models.SyncResponse{ServerTime: testNow, Changes: []models.SyncRecord{}, Conflicts: []uuid.UUID{}}}
	router := newTestHandler(stub).Init()

	req := httptest.NewRequest(http.MethodPost, SyncRoute, strings.NewReader(`{"changes":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Contains(t, gunzip(t, rr.Body.Bytes()), `"server_time"`)
}
