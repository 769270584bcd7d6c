// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	ErrUnknownPriority     = errors.New("unknown priority")
	ErrUnknownRecordKind   = errors.New("unknown sync record type")
	ErrMalformedRecord     = errors.New("malformed sync record")
	ErrUnknownExportFormat = errors.New("unknown export format")
)
