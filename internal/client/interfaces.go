// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Client defines the lifecycle contract of the client runtime.
type Client interface {
	// RunTUI starts the interactive UI and blocks until the user quits.
	RunTUI(ctx context.Context, info models.AppBuildInfo) error
	// RunSyncWatch syncs in the background until ctx is cancelled.
	RunSyncWatch(ctx context.Context, onReport func(models.SyncReport)) error
	Close() error
}

var _ Client = (*App)(nil)
