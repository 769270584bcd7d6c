// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server has no
// HTTP address or no services to route to.
var errNoHandlersAreCreated = errors.New("no handlers are created")
