// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_services_mock.go -package=servicemock

// MutationNotifier is told about every local change so that a sync can be
// scheduled.
type MutationNotifier interface {
	MarkPending()
}

// ClientTaskService is the local CRUD surface used by the TUI and the CLI.
// Every mutation bumps the entity's timestamp, records tombstones for
// deletions and signals the notifier. Nothing here waits on sync.
type ClientTaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	// FindTask resolves a full id or a unique id prefix.
	FindTask(ctx context.Context, ref string) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (models.Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (models.Task, error)
	CyclePriority(ctx context.Context, id uuid.UUID) (models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	CreateList(ctx context.Context, name string) (models.List, error)
	RenameList(ctx context.Context, id uuid.UUID, name string) (models.List, error)
	GetLists(ctx context.Context) ([]models.List, error)
	// FindList resolves a list by case-insensitive name or by id.
	FindList(ctx context.Context, ref string) (models.List, error)
	Inbox(ctx context.Context) (models.List, error)
	// DeleteList moves the list's tasks to the inbox and deletes the list.
	// It returns the number of tasks moved.
	DeleteList(ctx context.Context, id uuid.UUID) (int64, error)
	CountOpenTasks(ctx context.Context) (map[uuid.UUID]int, error)

	CreateTag(ctx context.Context, name string) (models.Tag, error)
	// EnsureTag returns the tag with this name, creating it when missing.
	EnsureTag(ctx context.Context, name string) (models.Tag, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
	FindTag(ctx context.Context, ref string) (models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error

	SetNotifier(n MutationNotifier)
}

// ChangeSetBuilder collects the local records to upload.
type ChangeSetBuilder interface {
	// Build returns every task, list and tag when watermark is nil.
	// Otherwise it returns records changed after the watermark plus the
	// tombstones recorded after it. It has no side effects.
	Build(ctx context.Context, watermark *time.Time) ([]models.SyncRecord, error)
}

// MergeApplier writes the server's change set to local storage.
type MergeApplier interface {
	// Apply applies lists, tags, tasks, links and then deletions with
	// foreign keys relaxed. Per-record failures are counted in the result;
	// the error only reports a failure of the foreign key guard.
	Apply(ctx context.Context, resp models.SyncResponse) (models.MergeResult, error)
}

// ClientSyncService runs the steps of one sync attempt. Prepare and Complete
// touch local storage and belong to the primary loop; Exchange only talks to
// the network and may run on a worker goroutine.
type ClientSyncService interface {
	Prepare(ctx context.Context, full bool) (models.SyncAttempt, error)
	Exchange(ctx context.Context, attempt models.SyncAttempt) (models.SyncResponse, error)
	Complete(ctx context.Context, attempt models.SyncAttempt, resp models.SyncResponse) (models.SyncReport, error)

	// SyncNow runs Prepare, Exchange and Complete in sequence.
	SyncNow(ctx context.Context, trigger models.SyncTrigger, full bool) models.SyncReport

	// CheckConfig returns the configuration error that would stop an
	// attempt, or nil.
	CheckConfig() error
	Config() config.ClientSync
	UpdateConfig(cfg config.ClientSync)

	LastSync(ctx context.Context) (*time.Time, error)
	// PendingChanges counts the records the next delta sync would upload.
	PendingChanges(ctx context.Context) (int, error)
	ResetWatermark(ctx context.Context) error
}
