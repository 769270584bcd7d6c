// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// SyncController is the part of the sync orchestrator the UI drives. Poll is
// called from the Update loop on every tick.
type SyncController interface {
	Poll(ctx context.Context) *models.SyncReport
	RequestSync(full bool)
	Status() models.SyncStatus
}
