// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// DefaultPollInterval is how often the loop asks the orchestrator for work.
// It bounds trigger latency, not the sync interval.
const DefaultPollInterval = 500 * time.Millisecond

// SyncLoop drives the orchestrator without a UI: every tick it calls Poll
// and hands finished reports to OnReport.
type SyncLoop struct {
	poller   Poller
	interval time.Duration
	onReport func(models.SyncReport)

	logger *logger.Logger
}

func NewSyncLoop(poller Poller, interval time.Duration, onReport func(models.SyncReport), logger *logger.Logger) *SyncLoop {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &SyncLoop{
		poller:   poller,
		interval: interval,
		onReport: onReport,
		logger:   logger,
	}
}

func (l *SyncLoop) Run(ctx context.Context) error {
	l.logger.Info().Dur("interval", l.interval).Msg("sync loop started")
	defer l.logger.Info().Msg("sync loop stopped")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.poll(ctx)
		}
	}
}

func (l *SyncLoop) poll(ctx context.Context) {
	report := l.poller.Poll(ctx)
	if report == nil {
		return
	}

	if report.OK() {
		l.logger.Debug().
			Str("trigger", report.Trigger.String()).
			Int("uploaded", report.Uploaded).
			Int("applied", report.Applied).
			Msg("sync finished")
	} else {
		l.logger.Warn().Err(report.Err).Str("trigger", report.Trigger.String()).Msg("sync failed")
	}

	if l.onReport != nil {
		l.onReport(*report)
	}
}
