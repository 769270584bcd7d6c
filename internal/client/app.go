// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	deviceID uuid.UUID
	clock    clock.Clock

	logger *logger.Logger
}

type options struct {
	clock        clock.Clock
	transport    adapter.SyncTransport
	orchestrator []service.OrchestratorOption
}

type Option func(*options)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithTransport replaces the HTTP sync transport.
func WithTransport(t adapter.SyncTransport) Option {
	return func(o *options) { o.transport = t }
}

// WithOrchestratorOptions passes options through to the sync orchestrator.
func WithOrchestratorOptions(opts ...service.OrchestratorOption) Option {
	return func(o *options) { o.orchestrator = append(o.orchestrator, opts...) }
}

// NewApp opens the local database and builds the client services. The
// caller must Close the app.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	clk := clock.OrReal(o.clock)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("error opening local storage: %w", err)
	}

	deviceID := store.LoadOrCreateDeviceID(cfg.App.DeviceIDFile, logger)

	transport := o.transport
	if transport == nil {
		transport = adapter.NewHTTPSyncTransport(cfg.Sync, deviceID, logger.WithComponent("transport"))
	}

	services := service.NewClientServices(storages, transport, cfg.Sync, clk, logger, o.orchestrator...)

	logger.Debug().
		Str("db", storages.Path()).
		Str("device_id", deviceID.String()).
		Bool("sync_enabled", cfg.Sync.Enabled).
		Msg("client app initialised")

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		deviceID: deviceID,
		clock:    clk,
		logger:   logger,
	}, nil
}

func (a *App) Services() *service.ClientServices { return a.services }
func (a *App) Config() *config.ClientConfig      { return a.cfg }
func (a *App) DeviceID() uuid.UUID               { return a.deviceID }
func (a *App) Clock() clock.Clock                { return a.clock }

// Close lets SQLite refresh its query planner statistics, then closes the
// database.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := a.storages.ExecRaw(ctx, "PRAGMA optimize"); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Close").Msg("optimize before close failed")
	}
	return a.storages.Close()
}

// RunTUI shows the interactive UI. Commits made by other processes, such as
// `taskkeeper add` in another terminal, reload the UI and schedule a sync
// when they left something to upload.
func (a *App) RunTUI(ctx context.Context, info models.AppBuildInfo) error {
	ui, err := tui.New(a.services, tui.Options{
		ShowCompleted: a.cfg.App.ShowCompleted,
		BuildInfo:     info,
		Clock:         a.clock,
	}, a.logger.WithComponent("tui"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher := workers.NewDBWatcher(a.storages.Path(), a.storages, func() {
		ui.NotifyExternalChange()
		a.markPendingIfDirty(ctx)
	}, a.logger.WithComponent("db-watcher"))

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- watcher.Run(ctx)
	}()

	err = ui.Run(ctx)
	cancel()

	if werr := <-watchErr; werr != nil {
		// the UI works without the watcher, it just misses external edits
		a.logger.Warn().Err(werr).Str("func", "App.RunTUI").Msg("database watcher stopped")
	}
	return err
}

// RunSyncWatch drives the orchestrator without a UI until ctx is cancelled.
// It fails fast when sync is not configured.
func (a *App) RunSyncWatch(ctx context.Context, onReport func(models.SyncReport)) error {
	if err := a.services.SyncService.CheckConfig(); err != nil {
		return err
	}

	loop := workers.NewSyncLoop(a.services.Orchestrator, workers.DefaultPollInterval, onReport, a.logger.WithComponent("sync-loop"))
	watcher := workers.NewDBWatcher(a.storages.Path(), a.storages, func() {
		a.markPendingIfDirty(ctx)
	}, a.logger.WithComponent("db-watcher"))

	err := workers.NewWorkers(loop, watcher).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// markPendingIfDirty signals the orchestrator when another process left
// records to upload. Checking first keeps two running clients from waking
// each other up after every watermark write.
func (a *App) markPendingIfDirty(ctx context.Context) {
	n, err := a.services.SyncService.PendingChanges(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.markPendingIfDirty").Msg("cannot count pending changes")
		return
	}
	if n > 0 {
		a.services.Orchestrator.MarkPending()
	}
}
