// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewTraceID returns a UUIDv7 string, so trace ids in the server log sort by
// arrival. It falls back to a random v4 id if the v7 clock sequence fails.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
