// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// ClientServices groups the client services. Every local mutation made
// through TaskService is reported to Orchestrator.
type ClientServices struct {
	TaskService  ClientTaskService
	SyncService  ClientSyncService
	Orchestrator *SyncOrchestrator
}

func NewClientServices(
	storages *store.ClientStorages,
	transport adapter.SyncTransport,
	cfg config.ClientSync,
	clk clock.Clock,
	logger *logger.Logger,
	opts ...OrchestratorOption,
) *ClientServices {
	taskSvc := NewClientTaskService(storages, clk, logger.WithComponent("tasks"))
	syncSvc := NewClientSyncService(storages, transport, cfg, clk, logger.WithComponent("sync"))
	orchestrator := NewSyncOrchestrator(syncSvc, clk, logger.WithComponent("orchestrator"), opts...)

	taskSvc.SetNotifier(orchestrator)

	return &ClientServices{
		TaskService:  taskSvc,
		SyncService:  syncSvc,
		Orchestrator: orchestrator,
	}
}
