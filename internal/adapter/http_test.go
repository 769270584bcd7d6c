// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

var testDeviceID = uuid.MustParse("6f1c7a52-9d0e-4b8a-a1f3-2f4f5c0d9e11")

// newTestTransport создаёт httpSyncTransport, направленный на тестовый сервер
func newTestTransport(t *testing.T, serverURL string) *httpSyncTransport {
	t.Helper()
	cfg := config.ClientSync{
		Enabled:        true,
		Server:         serverURL,
		Token:          "secret-token",
		RequestTimeout: 2 * time.Second,
	}
	return NewHTTPSyncTransport(cfg, testDeviceID, logger.Nop()).(*httpSyncTransport)
}

func writeResponse(t *testing.T, w http.ResponseWriter, resp models.SyncResponse) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	serverTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := models.NewList("Work")
	task := models.NewTask("ship it", list.ID)
	lastSync := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SyncPath, r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testDeviceID, req.DeviceID)
		require.NotNil(t, req.LastSync)
		assert.True(t, req.LastSync.Equal(lastSync))
		require.Len(t, req.Changes, 1)
		assert.Equal(t, models.KindTask, req.Changes[0].Kind)

		writeResponse(t, w, models.SyncResponse{
			ServerTime: serverTime,
			Changes:    []models.SyncRecord{models.ListRecord(list)},
			Conflicts:  []uuid.UUID{task.ID},
		})
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)
	got, err := tr.Sync(context.Background(), []models.SyncRecord{models.TaskRecord(task)}, &lastSync)

	require.NoError(t, err)
	assert.True(t, got.ServerTime.Equal(serverTime))
	require.Len(t, got.Changes, 1)
	assert.Equal(t, list.ID, got.Changes[0].List.ID)
	assert.Equal(t, []uuid.UUID{task.ID}, got.Conflicts)
}

func TestSync_FullSyncSendsNullWatermarkAndEmptyChanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "null", string(raw["last_sync"]))
		assert.Equal(t, "[]", string(raw["changes"]))

		_, _ = w.Write([]byte(`{"server_time":"2026-03-01T12:00:00Z","changes":null,"conflicts":[]}`))
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).Sync(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got.Changes)
	assert.Empty(t, got.Changes)
}

func TestSync_ConfigErrorsMakeNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		cfg  config.ClientSync
		err  error
	}{
		{name: "disabled", cfg: config.ClientSync{Server: srv.URL, Token: "t"}, err: ErrSyncDisabled},
		{name: "no server", cfg: config.ClientSync{Enabled: true, Token: "t"}, err: ErrSyncNotConfigured},
		{name: "no token", cfg: config.ClientSync{Enabled: true, Server: srv.URL, Token: "  "}, err: ErrSyncNotConfigured},
		{name: "bad address", cfg: config.ClientSync{Enabled: true, Server: "http://", Token: "t"}, err: ErrSyncNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewHTTPSyncTransport(tt.cfg, testDeviceID, logger.Nop())
			_, err := tr.Sync(context.Background(), nil, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ErrSyncConfig)
		})
	}
	assert.Zero(t, hits.Load())
}

func TestSync_NonOKStatusIsNotParsed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		extra  error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "database is down"},
		{name: "created is not ok", status: http.StatusCreated, body: `{"server_time":"2026-03-01T12:00:00Z","changes":[],"conflicts":[]}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "bad token", extra: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestTransport(t, srv.URL).Sync(context.Background(), nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.NotErrorIs(t, err, ErrMalformedResponse)
			if tt.extra != nil {
				assert.ErrorIs(t, err, tt.extra)
			}
		})
	}
}

func TestSync_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "bad record id", body: `{"server_time":"2026-03-01T12:00:00Z","changes":[{"type":"task","id":"x"}],"conflicts":[]}`},
		{name: "missing server time", body: `{"changes":[],"conflicts":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestTransport(t, srv.URL).Sync(context.Background(), nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestSync_UnknownRecordsKeepTheBatch(t *testing.T) {
	list := models.NewList("Work")
	body := `{"server_time":"2026-03-01T12:00:00Z","changes":[` +
		`{"type":"folder","id":"` + uuid.NewString() + `"},` +
		`{"type":"deleted","id":"` + uuid.NewString() + `","record_type":"folder","deleted_at":"2026-03-01T11:00:00Z"},` +
		`{"type":"list","id":"` + list.ID.String() + `","name":"Work","icon":"📋","is_inbox":false,` +
		`"created_at":"2026-03-01T11:00:00Z","updated_at":"2026-03-01T11:00:00Z","sort_order":1}` +
		`],"conflicts":[]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).Sync(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, got.Changes, 3)
	assert.Equal(t, models.SyncRecord{}, got.Changes[0])
	assert.Equal(t, models.SyncRecord{}, got.Changes[1])
	require.NotNil(t, got.Changes[2].List)
	assert.Equal(t, list.ID, got.Changes[2].List.ID)
}

func TestSync_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestTransport(t, url).Sync(context.Background(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSync_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	tr := newTestTransport(t, srv.URL)
	tr.UpdateConfig(config.ClientSync{
		Enabled:        true,
		Server:         srv.URL,
		Token:          "secret-token",
		RequestTimeout: 50 * time.Millisecond,
	})

	_, err := tr.Sync(context.Background(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestUpdateConfig_AppliesToNextExchange(t *testing.T) {
	var gotToken atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"server_time":"2026-03-01T12:00:00Z","changes":[],"conflicts":[]}`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)
	assert.True(t, tr.Configured())
	assert.Equal(t, testDeviceID, tr.DeviceID())

	tr.UpdateConfig(config.ClientSync{Enabled: true, Server: srv.URL + "/", Token: "rotated"})
	_, err := tr.Sync(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer rotated", gotToken.Load())

	tr.UpdateConfig(config.ClientSync{Enabled: false, Server: srv.URL, Token: "rotated"})
	assert.False(t, tr.Configured())
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" sync.example.com:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://sync.example.com:8080", got)

	got, err = normalizeBaseURL("https://sync.example.com/base/")
	require.NoError(t, err)
	assert.Equal(t, "https://sync.example.com/base", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)
}
