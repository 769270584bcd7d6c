// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoSyncHandler = errors.New("sync server needs an HTTP handler")
	errNoAddress     = errors.New("sync server needs a listen address")
)
