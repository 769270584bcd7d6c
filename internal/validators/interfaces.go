// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks tasks, lists, tags and sync payloads before they
// reach storage or the reference server's dataset.
//
// The same rules run on both sides: the client validates what the user typed,
// the server validates every record of an incoming change set.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are checked;
// otherwise every rule for the type applies. Unsupported types fail with
// [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
