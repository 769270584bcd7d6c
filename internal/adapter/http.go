// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// SyncPath is the server endpoint that accepts change sets.
const SyncPath = "/api/v1/sync"

type httpSyncTransport struct {
	client   *utils.HTTPClient
	deviceID uuid.UUID

	mu  sync.RWMutex
	cfg config.ClientSync

	logger *logger.Logger
}

// NewHTTPSyncTransport constructs the HTTP/JSON implementation of
// [SyncTransport]. deviceID is loaded once at startup and sent unchanged with
// every request.
func NewHTTPSyncTransport(cfg config.ClientSync, deviceID uuid.UUID, logger *logger.Logger) SyncTransport {
	client := utils.NewHTTPClient()
	client.
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &httpSyncTransport{
		client:   client,
		deviceID: deviceID,
		cfg:      cfg,
		logger:   logger,
	}
}

func (h *httpSyncTransport) Configured() bool {
	return h.snapshot().Configured()
}

func (h *httpSyncTransport) DeviceID() uuid.UUID {
	return h.deviceID
}

func (h *httpSyncTransport) UpdateConfig(cfg config.ClientSync) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
}

func (h *httpSyncTransport) snapshot() config.ClientSync {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// Sync implements [SyncTransport]. It POSTs {device_id, last_sync, changes}
// to SyncPath with the bearer token. The request is bounded by the configured
// timeout.
func (h *httpSyncTransport) Sync(ctx context.Context, changes []models.SyncRecord, lastSync *time.Time) (models.SyncResponse, error) {
	cfg := h.snapshot()

	switch {
	case !cfg.Enabled:
		return models.SyncResponse{}, ErrSyncDisabled
	case strings.TrimSpace(cfg.Server) == "" || strings.TrimSpace(cfg.Token) == "":
		return models.SyncResponse{}, ErrSyncNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.Server)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: invalid server address: %w", ErrSyncNotConfigured, err)
	}

	if changes == nil {
		changes = []models.SyncRecord{}
	}
	body := models.SyncRequest{
		DeviceID: h.deviceID,
		LastSync: lastSync,
		Changes:  changes,
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Debug().
		Str("func", "httpSyncTransport.Sync").
		Int("changes", len(changes)).
		Bool("full", lastSync == nil).
		Msg("sending change set")

	resp, err := h.client.R().
		SetContext(reqCtx).
		SetAuthToken(strings.TrimSpace(cfg.Token)).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(baseURL + SyncPath)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpSyncTransport.Sync").Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "httpSyncTransport.Sync").Int("status", resp.StatusCode()).Msg("sync rejected")
		return models.SyncResponse{}, err
	}

	var out models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		log.Warn().Err(err).Str("func", "httpSyncTransport.Sync").Msg("cannot decode sync response")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if out.ServerTime.IsZero() {
		return models.SyncResponse{}, fmt.Errorf("%w: missing server_time", ErrMalformedResponse)
	}
	if out.Changes == nil {
		out.Changes = []models.SyncRecord{}
	}

	log.Debug().
		Str("func", "httpSyncTransport.Sync").
		Int("received", len(out.Changes)).
		Int("conflicts", len(out.Conflicts)).
		Time("server_time", out.ServerTime).
		Msg("change set exchanged")

	return out, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
