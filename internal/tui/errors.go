// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

var errNoServices = errors.New("client services are not provided")

// humanizeError turns an error from the local services into the text shown
// in the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "The task no longer exists."
	case errors.Is(err, store.ErrListNotFound):
		return "The list no longer exists."
	case errors.Is(err, store.ErrCannotDeleteInbox):
		return "The inbox cannot be deleted."
	case errors.Is(err, service.ErrListNameTaken):
		return "A list with this name already exists."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "The title must not be empty."
	}

	return err.Error()
}
