// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"path/filepath"
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
	"github.com/MKhiriev/go-task-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	now        = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	errStorage = errors.New("disk I/O error")
	syncConfig = config.ClientSync{Enabled: true, Server: "http://sync.example", Token: "secret"}
)

type mockRepos struct {
	tasks      *mock.MockTaskRepository
	lists      *mock.MockListRepository
	tags       *mock.MockTagRepository
	tombstones *mock.MockTombstoneRepository
	syncState  *mock.MockSyncStateRepository
}

func newMockRepos(ctrl *gomock.Controller) mockRepos {
	return mockRepos{
		tasks:      mock.NewMockTaskRepository(ctrl),
		lists:      mock.NewMockListRepository(ctrl),
		tags:       mock.NewMockTagRepository(ctrl),
		tombstones: mock.NewMockTombstoneRepository(ctrl),
		syncState:  mock.NewMockSyncStateRepository(ctrl),
	}
}

func (m mockRepos) repositories() store.Repositories {
	return store.Repositories{
		Tasks:      m.tasks,
		Lists:      m.lists,
		Tags:       m.tags,
		Tombstones: m.tombstones,
		SyncState:  m.syncState,
	}
}

// ── ChangeSetBuilder ──

func TestChangeSetBuilder_FullBuildOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := newMockRepos(ctrl)
	ctx := context.Background()

	list := models.NewList("Work")
	tag := models.NewTag("errands")
	task := models.NewTask("write report", list.ID)

	repos.lists.EXPECT().GetLists(gomock.Any()).Return([]models.List{list}, nil)
	repos.tags.EXPECT().GetTags(gomock.Any()).Return([]models.Tag{tag}, nil)
	repos.tasks.EXPECT().GetAllTasks(gomock.Any()).Return([]models.Task{task}, nil)

	records, err := service.NewChangeSetBuilder(repos.repositories(), logger.Nop()).Build(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.KindList, records[0].Kind)
	assert.Equal(t, models.KindTag, records[1].Kind)
	assert.Equal(t, models.KindTask, records[2].Kind)
}

func TestChangeSetBuilder_DeltaStopsOnStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := newMockRepos(ctrl)
	since := now

	repos.tombstones.EXPECT().GetTombstonesSince(gomock.Any(), since).Return(nil, errStorage)

	records, err := service.NewChangeSetBuilder(repos.repositories(), logger.Nop()).Build(context.Background(), &since)
	assert.ErrorIs(t, err, errStorage)
	assert.Nil(t, records)
}

// ── MergeApplier ──

type relaxer struct {
	target store.MergeTarget
	err    error
}

func (r relaxer) WithForeignKeysRelaxed(ctx context.Context, fn func(ctx context.Context, target store.MergeTarget) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(ctx, r.target)
}

func TestMergeApplier_CountsFailedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock.NewMockMergeTarget(ctrl)

	list := models.NewList("Work")
	task := models.NewTask("write report", list.ID)
	gone := models.NewList("Old")

	gomock.InOrder(
		target.EXPECT().UpsertList(gomock.Any(), list).Return(nil),
		target.EXPECT().UpsertTask(gomock.Any(), task).Return(errStorage),
		target.EXPECT().DeleteListByID(gomock.Any(), gone.ID).Return(nil),
		target.EXPECT().GetInbox(gomock.Any()).Return(models.NewInbox(), nil),
	)
	target.EXPECT().MoveTasksToList(gomock.Any(), gone.ID, gomock.Any(), now).Return(int64(0), nil)

	applier := service.NewMergeApplier(relaxer{target: target}, clock.NewFakeClock(now), logger.Nop())
	result, err := applier.Apply(context.Background(), models.SyncResponse{
		Changes: []models.SyncRecord{
			models.TaskRecord(task),
			models.ListRecord(list),
			models.DeletedRecord(gone.ID, models.RecordTypeList, now),
			{Kind: models.KindTask},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 2, result.Failed, "the failed upsert and the empty record")
}

func TestMergeApplier_GuardFailure(t *testing.T) {
	applier := service.NewMergeApplier(relaxer{err: errStorage}, clock.NewFakeClock(now), logger.Nop())

	_, err := applier.Apply(context.Background(), models.SyncResponse{})
	assert.ErrorIs(t, err, service.ErrMergeGuard)
	assert.ErrorIs(t, err, errStorage)
}

// ── ClientTaskService notifier ──

func TestClientTaskService_NotifiesOnlySuccessfulMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := servicemock.NewMockMutationNotifier(ctrl)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{Path: filepath.Join(t.TempDir(), "tasks.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	svc := service.NewClientTaskService(storages, clock.NewFakeClock(now), logger.Nop())
	svc.SetNotifier(notifier)

	notifier.EXPECT().MarkPending().Times(1)

	_, err = svc.CreateList(ctx, "Work")
	require.NoError(t, err)

	_, err = svc.CreateList(ctx, "work")
	assert.ErrorIs(t, err, service.ErrListNameTaken)
}

// ── SyncOrchestrator ──

func newMockedOrchestrator(t *testing.T) (*service.SyncOrchestrator, *servicemock.MockClientSyncService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockClientSyncService(ctrl)
	svc.EXPECT().Config().Return(syncConfig).AnyTimes()

	o := service.NewSyncOrchestrator(svc, clock.NewFakeClock(now), logger.Nop(), service.WithMutationDelay(0))
	return o, svc
}

func TestSyncOrchestrator_PrepareFailureKeepsPending(t *testing.T) {
	o, svc := newMockedOrchestrator(t)
	ctx := context.Background()

	// первая попытка: bootstrap
	svc.EXPECT().Prepare(gomock.Any(), false).Return(models.SyncAttempt{}, errStorage)
	report := o.Poll(ctx)
	require.NotNil(t, report)
	assert.Equal(t, models.TriggerBootstrap, report.Trigger)

	o.MarkPending()
	svc.EXPECT().Prepare(gomock.Any(), false).Return(models.SyncAttempt{}, errStorage)

	report = o.Poll(ctx)
	require.NotNil(t, report)
	assert.Equal(t, models.TriggerMutation, report.Trigger)
	assert.ErrorIs(t, report.Err, errStorage)
	assert.False(t, o.InFlight())

	st := o.Status()
	assert.Equal(t, 1, st.PendingChanges)
	assert.False(t, st.Syncing)
	assert.NotEmpty(t, st.LastError)
	assert.Nil(t, st.LastSync)
}

func TestSyncOrchestrator_ExchangeFailureSkipsComplete(t *testing.T) {
	o, svc := newMockedOrchestrator(t)
	ctx := context.Background()

	attempt := models.SyncAttempt{
		Full:    true,
		Changes: []models.SyncRecord{models.ListRecord(models.NewInbox()), models.TagRecord(models.NewTag("home"))},
	}
	exchangeErr := adapter.ErrTransport

	o.RequestSync(true)
	svc.EXPECT().Prepare(gomock.Any(), true).Return(attempt, nil)
	svc.EXPECT().Exchange(gomock.Any(), attempt).Return(models.SyncResponse{}, exchangeErr)
	svc.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.Nil(t, o.Poll(ctx), "the exchange runs in the background")
	assert.True(t, o.InFlight())

	var report *models.SyncReport
	require.Eventually(t, func() bool {
		report = o.Poll(ctx)
		return report != nil
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, models.TriggerManual, report.Trigger)
	assert.Equal(t, 2, report.Uploaded)
	assert.ErrorIs(t, report.Err, adapter.ErrTransport)
	assert.Equal(t, "cannot reach sync server", o.Status().LastError)
}
