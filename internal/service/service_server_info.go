// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type serverInfoService struct {
	version   string
	startedAt time.Time
	clock     clock.Clock

	logger *logger.Logger
}

// NewServerInfoService remembers the start time; the version must be set.
func NewServerInfoService(cfg *config.ServerConfig, clk clock.Clock, logger *logger.Logger) (ServerInfoService, error) {
	if cfg == nil || cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	clk = clock.OrReal(clk)
	return &serverInfoService{
		version:   cfg.Version,
		startedAt: clk.Now().UTC(),
		clock:     clk,
		logger:    logger,
	}, nil
}

func (s *serverInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return models.ServerInfo{
		Version:    s.version,
		StartedAt:  s.startedAt,
		ServerTime: s.clock.Now().UTC(),
	}
}
