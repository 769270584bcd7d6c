// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/models"
)

type orchestratorFixture struct {
	o         *SyncOrchestrator
	clock     *clock.FakeClock
	transport *mock.MockSyncTransport
}

func newOrchestratorFixture(t *testing.T, cfg config.ClientSync, opts ...OrchestratorOption) orchestratorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mock.NewMockSyncTransport(ctrl)
	clk := clock.NewFakeClock(at(0))

	svc := NewClientSyncService(newTestStorages(t), transport, cfg, clk, logger.Nop())
	opts = append([]OrchestratorOption{WithMutationDelay(0)}, opts...)

	return orchestratorFixture{
		o:         NewSyncOrchestrator(svc, clk, logger.Nop(), opts...),
		clock:     clk,
		transport: transport,
	}
}

// waitReport polls until the attempt in flight finishes.
func waitReport(t *testing.T, o *SyncOrchestrator) *models.SyncReport {
	t.Helper()
	var report *models.SyncReport
	require.Eventually(t, func() bool {
		report = o.Poll(testContext())
		return report != nil
	}, 2*time.Second, 5*time.Millisecond)
	return report
}

func okResponse(serverTime time.Time) models.SyncResponse {
	return models.SyncResponse{ServerTime: serverTime}
}

// bootstrap runs the startup attempt so that later tests start idle.
func (f orchestratorFixture) bootstrap(t *testing.T) {
	t.Helper()
	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Return(okResponse(at(1)), nil)

	require.Nil(t, f.o.Poll(testContext()))
	report := waitReport(t, f.o)
	require.Equal(t, models.TriggerBootstrap, report.Trigger)
	require.True(t, report.OK())
}

func TestSyncOrchestrator_Bootstrap(t *testing.T) {
	f := newOrchestratorFixture(t, enabledSync())

	assert.Equal(t, models.StatusNeverSynced, f.o.Status().String())
	f.bootstrap(t)

	st := f.o.Status()
	assert.False(t, st.Syncing)
	require.NotNil(t, st.LastSync)
	assert.True(t, st.LastSync.Equal(at(1)))
	assert.Empty(t, st.LastError)

	// без триггеров новая попытка не начинается
	assert.Nil(t, f.o.Poll(testContext()))
	assert.False(t, f.o.InFlight())
}

func TestSyncOrchestrator_NotConfiguredNeverStartsOnItsOwn(t *testing.T) {
	f := newOrchestratorFixture(t, config.ClientSync{IntervalSecs: 1})

	f.o.MarkPending()
	f.clock.Advance(time.Hour)
	for range 3 {
		assert.Nil(t, f.o.Poll(testContext()))
	}
	assert.Equal(t, "not configured", f.o.Status().String())
	assert.Equal(t, 1, f.o.Status().PendingChanges)

	// ручной запуск сообщает причину
	f.o.RequestSync(false)
	report := f.o.Poll(testContext())
	require.NotNil(t, report)
	require.ErrorIs(t, report.Err, adapter.ErrSyncDisabled)
	assert.Equal(t, "sync is disabled", f.o.Status().LastError)
	assert.Equal(t, 1, f.o.Status().PendingChanges)
}

func TestSyncOrchestrator_CoalescesTriggersWhileInFlight(t *testing.T) {
	f := newOrchestratorFixture(t, enabledSync())
	f.bootstrap(t)

	release := make(chan struct{})
	var calls atomic.Int32
	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []models.SyncRecord, *time.Time) (models.SyncResponse, error) {
			if calls.Add(1) == 1 {
				<-release
			}
			return okResponse(at(2)), nil
		}).Times(2)

	f.o.RequestSync(false)
	require.Nil(t, f.o.Poll(testContext()))
	require.True(t, f.o.InFlight())
	assert.True(t, f.o.Status().Syncing)

	for range 5 {
		f.o.RequestSync(true)
		f.o.MarkPending()
		assert.Nil(t, f.o.Poll(testContext()))
	}
	assert.Equal(t, int32(1), calls.Load(), "one attempt at a time")

	close(release)
	report := waitReport(t, f.o)
	assert.Equal(t, models.TriggerManual, report.Trigger)

	// отложенный полный запуск выполняется после завершения
	require.Nil(t, f.o.Poll(testContext()))
	report = waitReport(t, f.o)
	assert.Equal(t, models.TriggerManual, report.Trigger)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSyncOrchestrator_DeltaRequestWhileInFlightIsDropped(t *testing.T) {
	f := newOrchestratorFixture(t, enabledSync())
	f.bootstrap(t)

	release := make(chan struct{})
	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []models.SyncRecord, *time.Time) (models.SyncResponse, error) {
			<-release
			return okResponse(at(2)), nil
		}).Times(1)

	f.o.RequestSync(false)
	require.Nil(t, f.o.Poll(testContext()))
	require.True(t, f.o.InFlight())

	f.o.RequestSync(false)
	close(release)
	report := waitReport(t, f.o)
	assert.Equal(t, models.TriggerManual, report.Trigger)

	// повторный запрос во время синхронизации не ставится в очередь
	assert.Nil(t, f.o.Poll(testContext()))
	assert.False(t, f.o.InFlight())
}

func TestSyncOrchestrator_MutationTriggerWaitsForDelay(t *testing.T) {
	f := newOrchestratorFixture(t, enabledSync(), WithMutationDelay(2*time.Second))
	f.bootstrap(t)

	f.o.MarkPending()
	f.clock.Advance(time.Second)
	assert.Nil(t, f.o.Poll(testContext()))
	assert.False(t, f.o.InFlight())

	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Return(okResponse(at(3)), nil)
	f.clock.Advance(time.Second)
	require.Nil(t, f.o.Poll(testContext()))
	require.True(t, f.o.InFlight())

	report := waitReport(t, f.o)
	assert.Equal(t, models.TriggerMutation, report.Trigger)
	assert.Zero(t, f.o.Status().PendingChanges)
}

func TestSyncOrchestrator_IntervalTrigger(t *testing.T) {
	cfg := enabledSync()
	cfg.IntervalSecs = 60
	f := newOrchestratorFixture(t, cfg)
	f.bootstrap(t)

	f.clock.Advance(59 * time.Second)
	assert.Nil(t, f.o.Poll(testContext()))
	assert.False(t, f.o.InFlight())

	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Return(okResponse(at(4)), nil)
	f.clock.Advance(time.Second)
	require.Nil(t, f.o.Poll(testContext()))

	report := waitReport(t, f.o)
	assert.Equal(t, models.TriggerInterval, report.Trigger)
}

func TestSyncOrchestrator_FailureKeepsPendingAndLastSync(t *testing.T) {
	f := newOrchestratorFixture(t, enabledSync(), WithMutationDelay(time.Hour))
	f.bootstrap(t)

	f.o.MarkPending()
	f.o.MarkPending()

	f.transport.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{}, fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport))

	f.o.RequestSync(false)
	require.Nil(t, f.o.Poll(testContext()))
	report := waitReport(t, f.o)
	require.ErrorIs(t, report.Err, adapter.ErrTransport)

	st := f.o.Status()
	assert.Equal(t, 2, st.PendingChanges)
	assert.Equal(t, "cannot reach sync server", st.LastError)
	assert.Equal(t, "sync failed: cannot reach sync server", st.String())
	require.NotNil(t, st.LastSync)
	assert.True(t, st.LastSync.Equal(at(1)))

	last := f.o.LastReport()
	require.NotNil(t, last)
	assert.False(t, last.OK())
}

func TestSyncOrchestrator_RefreshHookRunsAfterSuccess(t *testing.T) {
	var refreshed []models.SyncTrigger
	f := newOrchestratorFixture(t, enabledSync(), WithRefreshHook(func(r models.SyncReport) {
		refreshed = append(refreshed, r.Trigger)
	}))
	f.bootstrap(t)

	assert.Equal(t, []models.SyncTrigger{models.TriggerBootstrap}, refreshed)
}

func TestSyncOrchestrator_UpdateConfig(t *testing.T) {
	f := newOrchestratorFixture(t, config.ClientSync{})
	assert.False(t, f.o.Status().Configured)

	next := enabledSync()
	f.transport.EXPECT().UpdateConfig(next)
	f.o.UpdateConfig(next)

	assert.True(t, f.o.Status().Configured)
}
