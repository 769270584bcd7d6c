// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TaskRepository persists tasks and their tag links.
type TaskRepository interface {
	// UpsertTask inserts the task or overwrites every field of the row with
	// the same id, and replaces its tag links with task.TagIDs.
	UpsertTask(ctx context.Context, task models.Task) error
	GetTask(ctx context.Context, id uuid.UUID) (models.Task, error)
	// FindTaskByPrefix resolves a full id or a unique id prefix.
	FindTaskByPrefix(ctx context.Context, prefix string) (models.Task, error)
	GetAllTasks(ctx context.Context) ([]models.Task, error)
	GetTasksSince(ctx context.Context, since time.Time) ([]models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	// CountOpenTasksByList returns the number of incomplete tasks per list id.
	CountOpenTasksByList(ctx context.Context) (map[uuid.UUID]int, error)
	MoveTasksToList(ctx context.Context, from, to uuid.UUID, now time.Time) (int64, error)
	// DeleteTaskByID removes the task and its links. A missing row is not an
	// error.
	DeleteTaskByID(ctx context.Context, id uuid.UUID) error
}

// ListRepository persists lists.
type ListRepository interface {
	UpsertList(ctx context.Context, list models.List) error
	GetList(ctx context.Context, id uuid.UUID) (models.List, error)
	GetListByName(ctx context.Context, name string) (models.List, error)
	GetInbox(ctx context.Context) (models.List, error)
	GetLists(ctx context.Context) ([]models.List, error)
	GetListsSince(ctx context.Context, since time.Time) ([]models.List, error)
	// DeleteListByID removes the list row only. A missing row is not an error.
	DeleteListByID(ctx context.Context, id uuid.UUID) error
}

// TagRepository persists tags and standalone task-tag links.
type TagRepository interface {
	UpsertTag(ctx context.Context, tag models.Tag) error
	UpsertTaskTag(ctx context.Context, link models.TaskTagLink) error
	GetTagByName(ctx context.Context, name string) (models.Tag, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
	// GetTagsSince compares created_at: tags carry no update timestamp.
	GetTagsSince(ctx context.Context, since time.Time) ([]models.Tag, error)
	// DeleteTagByID removes the tag and its links. A missing row is not an
	// error.
	DeleteTagByID(ctx context.Context, id uuid.UUID) error
}

// TombstoneRepository records local deletions for the next sync.
type TombstoneRepository interface {
	RecordTombstone(ctx context.Context, tombstone models.Tombstone) error
	GetTombstonesSince(ctx context.Context, since time.Time) ([]models.Tombstone, error)
	PurgeTombstonesBefore(ctx context.Context, before time.Time) (int64, error)
}

// SyncStateRepository persists the sync watermark and the local build
// cursor. The watermark is the server time of the last completed sync and is
// sent back as last_sync. The cursor bounds the next delta build; it never
// passes the moment the last successful change set was built.
type SyncStateRepository interface {
	// GetLastSync returns nil when no sync has completed yet.
	GetLastSync(ctx context.Context) (*time.Time, error)
	SetLastSync(ctx context.Context, t time.Time) error
	// GetBuildCursor returns nil when no cursor was stored.
	GetBuildCursor(ctx context.Context) (*time.Time, error)
	SetBuildCursor(ctx context.Context, t time.Time) error
	// ClearLastSync forgets both the watermark and the cursor.
	ClearLastSync(ctx context.Context) error
}

// MergeTarget is the write surface the merge applier uses while foreign key
// enforcement is relaxed.
type MergeTarget interface {
	UpsertList(ctx context.Context, list models.List) error
	UpsertTag(ctx context.Context, tag models.Tag) error
	UpsertTask(ctx context.Context, task models.Task) error
	UpsertTaskTag(ctx context.Context, link models.TaskTagLink) error
	DeleteTaskByID(ctx context.Context, id uuid.UUID) error
	DeleteListByID(ctx context.Context, id uuid.UUID) error
	DeleteTagByID(ctx context.Context, id uuid.UUID) error

	// GetInbox and MoveTasksToList re-home tasks left behind by a list
	// deletion.
	GetInbox(ctx context.Context) (models.List, error)
	MoveTasksToList(ctx context.Context, from, to uuid.UUID, now time.Time) (int64, error)
}
