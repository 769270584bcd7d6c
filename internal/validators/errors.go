// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidDeviceID   = errors.New("invalid device id")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyName         = errors.New("name is required")
	ErrTooLong           = errors.New("value is too long")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidListID     = errors.New("invalid list id")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrInvalidRecordType = errors.New("invalid record type")
	ErrInvalidColor      = errors.New("invalid color")
	ErrEmptyRecord       = errors.New("record has no payload")
)
