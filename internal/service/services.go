// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// ServerServices groups the services of the reference server.
type ServerServices struct {
	SyncService SyncServerService
	ServerInfo  ServerInfoService
}

func NewServerServices(cfg *config.ServerConfig, clk clock.Clock, logger *logger.Logger) (*ServerServices, error) {
	info, err := NewServerInfoService(cfg, clk, logger)
	if err != nil {
		return nil, err
	}

	syncSvc := NewSyncValidationService().Wrap(NewSyncServerService(clk, logger))

	return &ServerServices{
		SyncService: syncSvc,
		ServerInfo:  info,
	}, nil
}
