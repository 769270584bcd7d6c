// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type clientSyncService struct {
	syncState  store.SyncStateRepository
	tombstones store.TombstoneRepository
	builder    ChangeSetBuilder
	applier    MergeApplier
	transport  adapter.SyncTransport
	clock      clock.Clock

	mu  sync.RWMutex
	cfg config.ClientSync

	logger *logger.Logger
}

// NewClientSyncService wires the builder, the applier and the transport over
// the local storages.
func NewClientSyncService(storages *store.ClientStorages, transport adapter.SyncTransport, cfg config.ClientSync, clk clock.Clock, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		syncState:  storages.SyncState,
		tombstones: storages.Tombstones,
		builder:    NewChangeSetBuilder(storages.Repositories, logger),
		applier:    NewMergeApplier(storages, clk, logger),
		transport:  transport,
		clock:      clk,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *clientSyncService) Config() config.ClientSync {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *clientSyncService) UpdateConfig(cfg config.ClientSync) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.transport.UpdateConfig(cfg)
}

func (s *clientSyncService) CheckConfig() error {
	return checkSyncConfig(s.Config())
}

func checkSyncConfig(cfg config.ClientSync) error {
	switch {
	case !cfg.Enabled:
		return adapter.ErrSyncDisabled
	case strings.TrimSpace(cfg.Server) == "" || strings.TrimSpace(cfg.Token) == "":
		return adapter.ErrSyncNotConfigured
	}
	return nil
}

// Prepare reads the watermark and builds the change set. A full attempt
// ignores the watermark. Configuration errors are reported before anything
// is read.
func (s *clientSyncService) Prepare(ctx context.Context, full bool) (models.SyncAttempt, error) {
	if err := s.CheckConfig(); err != nil {
		return models.SyncAttempt{}, err
	}

	preparedAt := s.clock.Now()

	var watermark, since *time.Time
	if !full {
		var err error
		if watermark, since, err = s.readCursors(ctx); err != nil {
			return models.SyncAttempt{}, err
		}
	}

	changes, err := s.builder.Build(ctx, since)
	if err != nil {
		return models.SyncAttempt{}, fmt.Errorf("error building change set: %w", err)
	}

	return models.SyncAttempt{
		Watermark:  watermark,
		Since:      since,
		PreparedAt: preparedAt,
		Changes:    changes,
		Full:       watermark == nil,
	}, nil
}

// readCursors returns the server watermark and the local build cursor. A
// database synced before the cursor existed builds from the watermark.
func (s *clientSyncService) readCursors(ctx context.Context) (watermark, since *time.Time, err error) {
	watermark, err = s.syncState.GetLastSync(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading watermark: %w", err)
	}
	if watermark == nil {
		return nil, nil, nil
	}

	since, err = s.syncState.GetBuildCursor(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading build cursor: %w", err)
	}
	if since == nil {
		since = watermark
	}
	return watermark, since, nil
}

// nextBuildCursor keeps local edits stamped while the exchange was in flight
// above the cursor, so the next delta still carries them.
func nextBuildCursor(preparedAt, serverTime time.Time) time.Time {
	if preparedAt.IsZero() || serverTime.Before(preparedAt) {
		return serverTime
	}
	return preparedAt
}

// Exchange sends the attempt's change set. It does not touch local storage.
func (s *clientSyncService) Exchange(ctx context.Context, attempt models.SyncAttempt) (models.SyncResponse, error) {
	return s.transport.Sync(ctx, attempt.Changes, attempt.Watermark)
}

// Complete merges the response, advances the watermark to the server time
// and moves the build cursor to the earlier of the server time and the
// attempt's build start. Tombstones below the cursor the attempt was built
// from were uploaded by an earlier successful attempt and are purged.
func (s *clientSyncService) Complete(ctx context.Context, attempt models.SyncAttempt, resp models.SyncResponse) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{
		Uploaded:   len(attempt.Changes),
		Received:   len(resp.Changes),
		Conflicts:  resp.Conflicts,
		ServerTime: resp.ServerTime,
	}

	result, err := s.applier.Apply(ctx, resp)
	report.Applied = result.Applied
	report.Failed = result.Failed
	if err != nil {
		report.Err = err
		return report, err
	}

	if err = s.syncState.SetBuildCursor(ctx, nextBuildCursor(attempt.PreparedAt, resp.ServerTime)); err != nil {
		report.Err = fmt.Errorf("error saving build cursor: %w", err)
		return report, report.Err
	}
	if err = s.syncState.SetLastSync(ctx, resp.ServerTime); err != nil {
		report.Err = fmt.Errorf("error saving watermark: %w", err)
		return report, report.Err
	}

	if attempt.Since != nil {
		purged, err := s.tombstones.PurgeTombstonesBefore(ctx, *attempt.Since)
		if err != nil {
			log.Warn().Err(err).Str("func", "clientSyncService.Complete").Msg("failed to purge tombstones")
		} else if purged > 0 {
			log.Debug().Int64("purged", purged).Msg("purged uploaded tombstones")
		}
	}

	if len(resp.Conflicts) > 0 {
		log.Info().Int("conflicts", len(resp.Conflicts)).Msg("server kept its version for conflicting records")
	}
	return report, nil
}

func (s *clientSyncService) SyncNow(ctx context.Context, trigger models.SyncTrigger, full bool) models.SyncReport {
	log := logger.FromContext(ctx)

	attempt, err := s.Prepare(ctx, full)
	if err != nil {
		return models.SyncReport{Trigger: trigger, Err: err}
	}

	resp, err := s.Exchange(ctx, attempt)
	if err != nil {
		log.Warn().Err(err).Str("func", "clientSyncService.SyncNow").Str("trigger", trigger.String()).Msg("sync exchange failed")
		return models.SyncReport{Trigger: trigger, Uploaded: len(attempt.Changes), Err: err}
	}

	report, _ := s.Complete(ctx, attempt, resp)
	report.Trigger = trigger
	return report
}

func (s *clientSyncService) LastSync(ctx context.Context) (*time.Time, error) {
	return s.syncState.GetLastSync(ctx)
}

func (s *clientSyncService) PendingChanges(ctx context.Context) (int, error) {
	_, since, err := s.readCursors(ctx)
	if err != nil {
		return 0, err
	}
	changes, err := s.builder.Build(ctx, since)
	if err != nil {
		return 0, err
	}
	return len(changes), nil
}

func (s *clientSyncService) ResetWatermark(ctx context.Context) error {
	return s.syncState.ClearLastSync(ctx)
}
