// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// the HTTP client, JWT handling, trace ids and due date parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key used to store the dataset owner in the context.
// The auth middleware writes the token subject under it.
//
//	ctx := context.WithValue(ctx, utils.OwnerCtxKey, "alice")
var OwnerCtxKey = contextKey("owner")

// GetOwnerFromContext retrieves the dataset owner from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok && owner != ""
}
