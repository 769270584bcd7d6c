// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-task-keeper/models"
)

// InspectToken reads the claims of a sync token without verifying its
// signature; the client does not hold the signing key. Opaque tokens yield
// IsJWT=false and [ErrNotJWT].
func InspectToken(raw string) (models.TokenInfo, error) {
	raw = strings.TrimSpace(raw)
	if strings.Count(raw, ".") != 2 {
		return models.TokenInfo{}, ErrNotJWT
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return models.TokenInfo{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	info := models.TokenInfo{
		IsJWT:   true,
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.UTC()
		info.ExpiresAt = &exp
	}
	return info, nil
}
