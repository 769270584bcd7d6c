// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

type errorStatus struct {
	code int
	msg  string
}

var errorStatusMap = map[error]errorStatus{
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	models.ErrMalformedRecord:        {http.StatusBadRequest, app.MsgInvalidDataProvided},
	models.ErrUnknownRecordKind:      {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrVersionIsNotSpecified: {http.StatusInternalServerError, app.MsgInternalServerError},
	ErrTokenRejected:                 {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	ErrNoOwner:                       {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
}

// statusFromError maps an error to the status code and the public message
// written to the client. Unknown errors never leak their text.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status.code, status.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
