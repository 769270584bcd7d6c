// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference sync server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, compression and bearer authentication are
// handled here before a change set is handed to the service layer.
package http
