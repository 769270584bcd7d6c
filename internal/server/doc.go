// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the reference sync server's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
