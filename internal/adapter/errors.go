// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrSyncConfig matches every configuration error.
	ErrSyncConfig        = errors.New("sync configuration error")
	ErrSyncDisabled      = fmt.Errorf("%w: sync is disabled", ErrSyncConfig)
	ErrSyncNotConfigured = fmt.Errorf("%w: sync server or token is not set", ErrSyncConfig)

	ErrTransport         = errors.New("sync transport failed")
	ErrUnexpectedStatus  = errors.New("unexpected sync response status")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrMalformedResponse = errors.New("malformed sync response")

	ErrNotJWT = errors.New("token is not a JWT")
)
