// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to exchange change sets with
// the task-keeper sync server.
//
// The primary abstraction is [SyncTransport], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPSyncTransport]).
//
// Error values defined in errors.go let callers tell configuration problems,
// network failures, unexpected statuses and malformed bodies apart with
// [errors.Is]. HTTP statuses are mapped to them by mapHTTPError.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_transport_mock.go -package=mock

// SyncTransport performs one request/response exchange with the sync server.
// Implementations never retry and never touch local state.
type SyncTransport interface {
	// Sync sends changes together with the device id and lastSync and returns
	// the server's reconciled change set. A configuration problem is reported
	// before any network traffic.
	Sync(ctx context.Context, changes []models.SyncRecord, lastSync *time.Time) (models.SyncResponse, error)

	// Configured reports whether sync is enabled and has a server and a token.
	Configured() bool

	// DeviceID returns the id sent with every request.
	DeviceID() uuid.UUID

	// UpdateConfig replaces the sync settings. Exchanges already in flight
	// keep the settings they started with.
	UpdateConfig(cfg config.ClientSync)
}
