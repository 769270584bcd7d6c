// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenInfo describes a sync bearer token for display. Only JWT tokens can be
// inspected; opaque tokens report IsJWT=false.
type TokenInfo struct {
	IsJWT     bool
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
}

// Expired reports whether the token carries an expiry that lies before now.
func (t TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
