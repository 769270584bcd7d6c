// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// reference sync server and by the client when it interprets server replies.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place lets the client recognise
// them without parsing structured errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. a task without a title).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoAuthorizationHeader is returned when a protected route is called
	// without a bearer token.
	MsgNoAuthorizationHeader = "no authorization header"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified: wrong static token, bad signature or wrong issuer.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnsupportedContentType is returned when the sync endpoint receives
	// a body that is not JSON.
	MsgUnsupportedContentType = "content type must be application/json"

	// MsgMethodNotAllowed is returned for a known route called with the
	// wrong HTTP method.
	MsgMethodNotAllowed = "method not allowed"
)
