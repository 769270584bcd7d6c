// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/app"
)

// SyncErrorMessage turns a sync failure into the short text shown after
// "sync failed: " in the status line.
func SyncErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrSyncDisabled):
		return "sync is disabled"
	case errors.Is(err, adapter.ErrSyncNotConfigured):
		return "sync server or token is not set"
	case errors.Is(err, adapter.ErrUnauthorized):
		msg := err.Error()
		if strings.Contains(msg, app.MsgTokenIsExpired) && !strings.Contains(msg, app.MsgTokenIsExpiredOrInvalid) {
			return "sync token is expired"
		}
		return "server rejected the sync token"
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		if strings.Contains(err.Error(), app.MsgInvalidDataProvided) {
			return "server rejected the change set"
		}
		return "server error: " + extractDetail(err, adapter.ErrUnexpectedStatus)
	case errors.Is(err, adapter.ErrTransport):
		return "cannot reach sync server"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "invalid response from sync server"
	case errors.Is(err, ErrMergeGuard):
		return "could not apply server changes"
	}

	return err.Error()
}

// extractDetail strips the sentinel prefix from a message of the form
// "<sentinel>: <detail>".
func extractDetail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return msg[len(prefix):]
	}
	return msg
}
