// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the sync server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
