// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ServerInfo is the body of GET /api/version on the reference server.
type ServerInfo struct {
	Version    string    `json:"version"`
	StartedAt  time.Time `json:"started_at"`
	ServerTime time.Time `json:"server_time"`
}
