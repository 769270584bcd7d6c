// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client runtime shared by the terminal UI
// and the command line.
//
// It opens the local database, loads the device id, builds the sync
// transport and the client services, and runs the long-lived modes: the
// interactive UI and the headless sync watcher.
package client
