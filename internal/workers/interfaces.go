// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the client's background workers and a Workers
// aggregate that runs them under one lifecycle.
package workers

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Worker is a background job. Run blocks until ctx is cancelled or the
// worker fails; returning nil after cancellation is a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// DataVersioner exposes SQLite's data_version counter.
type DataVersioner interface {
	DataVersion(ctx context.Context) (int64, error)
}

// Poller is the part of the sync orchestrator a loop needs.
type Poller interface {
	Poll(ctx context.Context) *models.SyncReport
}
