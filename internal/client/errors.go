// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var ErrNoConfig = errors.New("client config is not provided")
