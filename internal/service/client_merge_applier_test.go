// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestApplier(s *store.ClientStorages) MergeApplier {
	return NewMergeApplier(s, clock.NewFakeClock(at(30)), logger.Nop())
}

func listAt(name string, minute int) models.List {
	l := models.NewList(name)
	l.CreatedAt = at(minute)
	l.UpdatedAt = at(minute)
	return l
}

func TestMergeApplier_AppliesChildrenBeforeParents(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	list := listAt("Work", 1)
	tag := models.NewTag("urgent")
	task := taskAt("report", list.ID, 2)
	task.TagIDs = []uuid.UUID{tag.ID}

	// задача приходит раньше своего списка и тега
	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes: []models.SyncRecord{
			models.TaskRecord(task),
			models.TagRecord(tag),
			models.ListRecord(list),
		},
	}

	result, err := newTestApplier(s).Apply(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, models.MergeResult{Total: 3, Applied: 3}, result)

	stored, err := s.Tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, stored.ListID)
	assert.Equal(t, []uuid.UUID{tag.ID}, stored.TagIDs)
}

func TestMergeApplier_IsIdempotent(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	applier := newTestApplier(s)

	list := listAt("Home", 1)
	task := taskAt("dishes", list.ID, 2)
	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes: []models.SyncRecord{
			models.ListRecord(list),
			models.TaskRecord(task),
			models.DeletedRecord(uuid.New(), models.RecordTypeTask, at(3)),
		},
	}

	first, err := applier.Apply(ctx, resp)
	require.NoError(t, err)
	second, err := applier.Apply(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, second.Applied)

	tasks, err := s.Tasks.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "dishes", tasks[0].Title)
}

func TestMergeApplier_DeleteThenRecreateKeepsRecord(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	inbox, err := s.Lists.GetInbox(ctx)
	require.NoError(t, err)
	task := taskAt("phoenix", inbox.ID, 5)

	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes: []models.SyncRecord{
			models.DeletedRecord(task.ID, models.RecordTypeTask, at(4)),
			models.TaskRecord(task),
		},
	}

	result, err := newTestApplier(s).Apply(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, models.MergeResult{Total: 2, Applied: 2}, result)

	_, err = s.Tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
}

func TestMergeApplier_Deletions(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	inbox, err := s.Lists.GetInbox(ctx)
	require.NoError(t, err)
	tag := models.NewTag("old")
	require.NoError(t, s.Tags.UpsertTag(ctx, tag))
	task := taskAt("old task", inbox.ID, 1)
	task.TagIDs = []uuid.UUID{tag.ID}
	require.NoError(t, s.Tasks.UpsertTask(ctx, task))

	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes: []models.SyncRecord{
			models.DeletedRecord(tag.ID, models.RecordTypeTag, at(2)),
			models.DeletedRecord(task.ID, models.RecordTypeTask, at(2)),
			models.DeletedRecord(uuid.New(), models.RecordTypeTaskTag, at(2)),
			models.DeletedRecord(uuid.New(), models.RecordTypeList, at(2)),
		},
	}

	result, err := newTestApplier(s).Apply(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, models.MergeResult{Total: 4, Applied: 4}, result)

	_, err = s.Tasks.GetTask(ctx, task.ID)
	require.ErrorIs(t, err, store.ErrTaskNotFound)
	tags, err := s.Tags.GetTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestMergeApplier_RehomesTasksOfDeletedList(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	list := listAt("Trip", 1)
	require.NoError(t, s.Lists.UpsertList(ctx, list))
	task := taskAt("passport", list.ID, 2)
	require.NoError(t, s.Tasks.UpsertTask(ctx, task))

	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes:    []models.SyncRecord{models.DeletedRecord(list.ID, models.RecordTypeList, at(5))},
	}

	_, err := newTestApplier(s).Apply(ctx, resp)
	require.NoError(t, err)

	inbox, err := s.Lists.GetInbox(ctx)
	require.NoError(t, err)
	stored, err := s.Tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, inbox.ID, stored.ListID)
	assert.True(t, stored.UpdatedAt.Equal(at(30)))
}

func TestMergeApplier_CountsMalformedRecordsAsFailed(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	inbox, err := s.Lists.GetInbox(ctx)
	require.NoError(t, err)

	resp := models.SyncResponse{
		ServerTime: at(10),
		Changes: []models.SyncRecord{
			{Kind: models.KindTask},
			models.TaskRecord(taskAt("ok", inbox.ID, 1)),
		},
	}

	result, err := newTestApplier(s).Apply(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, models.MergeResult{Total: 2, Applied: 1, Failed: 1}, result)
}

type failingRelaxer struct{ err error }

func (f failingRelaxer) WithForeignKeysRelaxed(context.Context, func(context.Context, store.MergeTarget) error) error {
	return f.err
}

func TestMergeApplier_GuardFailure(t *testing.T) {
	guardErr := errors.New("pragma failed")
	applier := NewMergeApplier(failingRelaxer{err: guardErr}, nil, logger.Nop())

	_, err := applier.Apply(testContext(), models.SyncResponse{ServerTime: at(1)})
	require.ErrorIs(t, err, ErrMergeGuard)
	assert.ErrorIs(t, err, guardErr)
}
