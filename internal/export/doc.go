// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders a snapshot of the local task database as JSON,
// todo.txt, Markdown or CSV.
package export
