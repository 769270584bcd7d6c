// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// DefaultOwner is the dataset owner of requests authenticated with the
// static server token. JWT requests use the token subject instead.
const DefaultOwner = "default"

var (
	// ErrTokenRejected is returned when the bearer token matches neither the
	// static token nor a valid signed JWT.
	ErrTokenRejected = errors.New("bearer token rejected")

	// ErrNoOwner means a protected handler ran without the auth middleware.
	ErrNoOwner = errors.New("no dataset owner in request context")
)
