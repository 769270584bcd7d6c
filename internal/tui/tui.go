// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal interface: a lists pane, a tasks
// pane and a status line that follows the sync orchestrator.
package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

// DefaultPollInterval is how often the UI asks the orchestrator to advance.
const DefaultPollInterval = workers.DefaultPollInterval

// Options tunes the UI.
type Options struct {
	ShowCompleted bool
	BuildInfo     models.AppBuildInfo
	PollInterval  time.Duration
	Clock         clock.Clock
}

type TUI struct {
	tasks service.ClientTaskService
	sync  SyncController
	opts  Options

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.TaskService == nil || services.Orchestrator == nil {
		return nil, errNoServices
	}

	return &TUI{
		tasks:  services.TaskService,
		sync:   services.Orchestrator,
		opts:   opts,
		logger: logger,
	}, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.tasks, t.sync, t.opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	t.logger.Info().Msg("tui started")
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return err
	}

	t.logger.Info().Msg("tui stopped")
	return nil
}

// NotifyExternalChange makes a running UI reload its data. It is meant to
// be called from the database watcher and does nothing when the UI is not
// running.
func (t *TUI) NotifyExternalChange() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(externalChangeMsg{})
	}
}
