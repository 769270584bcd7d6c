// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// Handler serves the sync and version endpoints.
type Handler struct {
	services *service.ServerServices

	// staticToken and signKey are the two accepted credentials. Either may be
	// empty, not both (config validation enforces this).
	staticToken    string
	signKey        string
	requestTimeout time.Duration

	newTraceID func() string

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:   services,
		newTraceID: utils.NewTraceID,
		logger:     logger,
	}
	if cfg != nil {
		h.staticToken = cfg.Token
		h.signKey = cfg.TokenSignKey
		h.requestTimeout = cfg.RequestTimeout
	}

	return h
}
