// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// maxSyncBodyBytes bounds a single change set.
const maxSyncBodyBytes = 32 << 20

// sync accepts a change set, merges it into the owner's dataset and answers
// with the records the device has not seen yet.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetOwnerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no owner in request context")
		code, msg := statusFromError(ErrNoOwner)
		utils.WriteError(w, msg, code)
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		log.Warn().Str("func", "*Handler.sync").Str("content_type", r.Header.Get("Content-Type")).Msg("unsupported content type")
		utils.WriteError(w, app.MsgUnsupportedContentType, http.StatusUnsupportedMediaType)
		return
	}

	var req models.SyncRequest
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSyncBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.Sync(ctx, owner, req)
	if err != nil {
		code, msg := statusFromError(err)
		log.Err(err).Str("func", "*Handler.sync").Str("owner", owner).Int("status", code).Msg("sync failed")
		utils.WriteError(w, msg, code)
		return
	}

	log.Info().
		Str("func", "*Handler.sync").
		Str("owner", owner).
		Str("device_id", req.DeviceID.String()).
		Int("received", len(req.Changes)).
		Int("sent", len(resp.Changes)).
		Int("conflicts", len(resp.Conflicts)).
		Msg("change set merged")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error writing sync response")
	}
}
