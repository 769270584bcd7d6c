// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// DefaultMutationDelay batches bursts of local edits into one attempt.
const DefaultMutationDelay = 2 * time.Second

type exchangeResult struct {
	resp models.SyncResponse
	err  error
}

type flight struct {
	attempt        models.SyncAttempt
	trigger        models.SyncTrigger
	pendingAtStart int
}

// SyncOrchestrator decides when to sync and keeps at most one attempt in
// flight. Poll is called from the primary loop on every iteration: it
// finishes a completed exchange, or starts a new attempt when a trigger is
// due. Only the network exchange runs on a worker goroutine; its result is
// handed back over a buffered channel.
//
// MarkPending, RequestSync, UpdateConfig and Status are safe to call from any
// goroutine.
type SyncOrchestrator struct {
	sync  ClientSyncService
	clock clock.Clock

	results chan exchangeResult

	mu            sync.Mutex
	status        models.SyncStatus
	current       *flight
	manual        bool
	manualFull    bool
	pending       int
	lastMutation  time.Time
	lastAttempt   time.Time
	bootstrapped  bool
	mutationDelay time.Duration
	lastReport    *models.SyncReport
	onRefresh     func(models.SyncReport)

	logger *logger.Logger
}

type OrchestratorOption func(*SyncOrchestrator)

// WithMutationDelay sets how long a mutation waits before it triggers an
// attempt. Zero triggers on the next Poll.
func WithMutationDelay(d time.Duration) OrchestratorOption {
	return func(o *SyncOrchestrator) { o.mutationDelay = d }
}

// WithRefreshHook registers fn to run on the primary loop after every
// successful attempt.
func WithRefreshHook(fn func(models.SyncReport)) OrchestratorOption {
	return func(o *SyncOrchestrator) { o.onRefresh = fn }
}

func NewSyncOrchestrator(svc ClientSyncService, clk clock.Clock, logger *logger.Logger, opts ...OrchestratorOption) *SyncOrchestrator {
	clk = clock.OrReal(clk)
	o := &SyncOrchestrator{
		sync:          svc,
		clock:         clk,
		results:       make(chan exchangeResult, 1),
		mutationDelay: DefaultMutationDelay,
		lastAttempt:   clk.Now(),
		logger:        logger,
	}
	o.status.Configured = svc.Config().Configured()

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MarkPending records a local mutation. It implements [MutationNotifier].
func (o *SyncOrchestrator) MarkPending() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.pending++
	o.lastMutation = o.clock.Now()
	o.status.PendingChanges = o.pending
}

// RequestSync asks for an attempt on the next Poll. A delta request made
// while an attempt is in flight is dropped. A full request waits for the
// attempt to finish, and full stays set until it runs.
func (o *SyncOrchestrator) RequestSync(full bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status.Syncing && !full {
		o.logger.Debug().Str("func", "SyncOrchestrator.RequestSync").Msg("attempt in flight, request dropped")
		return
	}
	o.manual = true
	o.manualFull = o.manualFull || full
}

// UpdateConfig replaces the sync settings. The attempt in flight keeps the
// settings it started with.
func (o *SyncOrchestrator) UpdateConfig(cfg config.ClientSync) {
	o.sync.UpdateConfig(cfg)

	o.mu.Lock()
	o.status.Configured = cfg.Configured()
	o.mu.Unlock()
}

// Status returns a copy of the user-visible status.
func (o *SyncOrchestrator) Status() models.SyncStatus {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.status
	if st.LastSync != nil {
		t := *st.LastSync
		st.LastSync = &t
	}
	return st
}

// InFlight reports whether an exchange is running.
func (o *SyncOrchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current != nil
}

// LastReport returns the outcome of the latest finished attempt, or nil.
func (o *SyncOrchestrator) LastReport() *models.SyncReport {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.lastReport == nil {
		return nil
	}
	r := *o.lastReport
	return &r
}

// Poll advances the state machine by one step without blocking. It returns
// the report of an attempt that finished during this call, or nil.
func (o *SyncOrchestrator) Poll(ctx context.Context) *models.SyncReport {
	select {
	case res := <-o.results:
		return o.finish(ctx, res)
	default:
	}

	trigger, full, ok := o.nextTrigger()
	if !ok {
		return nil
	}
	return o.start(ctx, trigger, full)
}

func (o *SyncOrchestrator) nextTrigger() (models.SyncTrigger, bool, bool) {
	cfg := o.sync.Config()
	now := o.clock.Now()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		return 0, false, false
	}

	if o.manual {
		full := o.manualFull
		o.manual, o.manualFull = false, false
		return models.TriggerManual, full, true
	}

	if !o.bootstrapped {
		o.bootstrapped = true
		if cfg.Enabled {
			return models.TriggerBootstrap, false, true
		}
	}

	if !cfg.Configured() {
		return 0, false, false
	}

	if o.pending > 0 && now.Sub(o.lastMutation) >= o.mutationDelay {
		return models.TriggerMutation, false, true
	}

	if interval := cfg.Interval(); interval > 0 && now.Sub(o.lastAttempt) >= interval {
		return models.TriggerInterval, false, true
	}

	return 0, false, false
}

func (o *SyncOrchestrator) start(ctx context.Context, trigger models.SyncTrigger, full bool) *models.SyncReport {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	o.lastAttempt = o.clock.Now()
	pendingAtStart := o.pending
	o.pending = 0
	o.status.Syncing = true
	o.mu.Unlock()

	attempt, err := o.sync.Prepare(ctx, full)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "SyncOrchestrator.start").
			Str("trigger", trigger.String()).
			Msg("sync attempt could not start")

		report := models.SyncReport{Trigger: trigger, Err: err}
		o.mu.Lock()
		o.pending += pendingAtStart
		o.settle(report)
		o.mu.Unlock()
		return &report
	}

	o.mu.Lock()
	o.current = &flight{attempt: attempt, trigger: trigger, pendingAtStart: pendingAtStart}
	o.mu.Unlock()

	log.Debug().
		Str("trigger", trigger.String()).
		Bool("full", attempt.Full).
		Int("changes", len(attempt.Changes)).
		Msg("sync attempt started")

	// the exchange is bounded by the transport timeout, not by ctx
	exchangeCtx := context.WithoutCancel(ctx)
	go func() {
		resp, err := o.sync.Exchange(exchangeCtx, attempt)
		o.results <- exchangeResult{resp: resp, err: err}
	}()

	return nil
}

func (o *SyncOrchestrator) finish(ctx context.Context, res exchangeResult) *models.SyncReport {
	o.mu.Lock()
	fl := o.current
	o.mu.Unlock()

	var report models.SyncReport
	if res.err != nil {
		report = models.SyncReport{Uploaded: len(fl.attempt.Changes), Err: res.err}
	} else {
		report, _ = o.sync.Complete(ctx, fl.attempt, res.resp)
	}
	report.Trigger = fl.trigger

	o.mu.Lock()
	o.current = nil
	if !report.OK() {
		o.pending += fl.pendingAtStart
	}
	o.settle(report)
	o.mu.Unlock()

	log := logger.FromContext(ctx)
	if report.OK() {
		log.Info().
			Str("trigger", report.Trigger.String()).
			Int("uploaded", report.Uploaded).
			Int("received", report.Received).
			Int("applied", report.Applied).
			Int("failed", report.Failed).
			Msg("sync completed")
		if o.onRefresh != nil {
			o.onRefresh(report)
		}
	} else {
		log.Warn().Err(report.Err).Str("trigger", report.Trigger.String()).Msg("sync failed")
	}

	return &report
}

// settle records the outcome in the status. Callers hold o.mu.
func (o *SyncOrchestrator) settle(report models.SyncReport) {
	o.status.Syncing = false
	o.status.PendingChanges = o.pending
	if report.OK() {
		t := report.ServerTime
		o.status.LastSync = &t
		o.status.LastError = ""
	} else {
		o.status.LastError = SyncErrorMessage(report.Err)
	}
	o.lastReport = &report
}
