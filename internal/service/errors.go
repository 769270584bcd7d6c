// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrListNameTaken     = errors.New("a list with this name already exists")
	ErrTagNameTaken      = errors.New("a tag with this name already exists")
	ErrCannotRenameInbox = errors.New("the inbox cannot be renamed")

	ErrMergeGuard = errors.New("merge could not run")
)
