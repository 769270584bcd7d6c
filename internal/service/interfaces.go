// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// SyncServerService is the reference server's side of the exchange. owner
// partitions datasets; every token subject sees its own records.
type SyncServerService interface {
	Sync(ctx context.Context, owner string, req models.SyncRequest) (models.SyncResponse, error)
}

// ServerInfoService reports the version and clock of the reference server.
type ServerInfoService interface {
	GetServerInfo(ctx context.Context) models.ServerInfo
}

// SyncServerServiceWrapper defines middleware composition for
// SyncServerService. Implementations wrap an existing service to add
// behavior such as validation.
type SyncServerServiceWrapper interface {
	Wrap(SyncServerService) SyncServerService
}
