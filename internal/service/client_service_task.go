// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type clientTaskService struct {
	storages  *store.ClientStorages
	clock     clock.Clock
	validator validators.Validator

	mu       sync.RWMutex
	notifier MutationNotifier

	logger *logger.Logger
}

// NewClientTaskService constructs a [ClientTaskService] over the local
// storages. A nil clk means the wall clock.
func NewClientTaskService(storages *store.ClientStorages, clk clock.Clock, logger *logger.Logger) ClientTaskService {
	return &clientTaskService{
		storages:  storages,
		clock:     clock.OrReal(clk),
		validator: validators.NewRecordValidator(),
		logger:    logger,
	}
}

func (s *clientTaskService) SetNotifier(n MutationNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

func (s *clientTaskService) markPending() {
	s.mu.RLock()
	n := s.notifier
	s.mu.RUnlock()

	if n != nil {
		n.MarkPending()
	}
}

// ── Tasks ──

func (s *clientTaskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	now := s.clock.Now()

	task.Title = strings.TrimSpace(task.Title)
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.TagIDs == nil {
		task.TagIDs = []uuid.UUID{}
	}
	if task.ListID == uuid.Nil {
		inbox, err := s.storages.Lists.GetInbox(ctx)
		if err != nil {
			return models.Task{}, err
		}
		task.ListID = inbox.ID
	} else if _, err := s.storages.Lists.GetList(ctx, task.ListID); err != nil {
		return models.Task{}, err
	}

	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := s.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.storages.Tasks.UpsertTask(ctx, task); err != nil {
		return models.Task{}, err
	}

	s.logger.Debug().Str("task_id", task.ID.String()).Msg("task created")
	s.markPending()
	return task, nil
}

func (s *clientTaskService) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	existing, err := s.storages.Tasks.GetTask(ctx, task.ID)
	if err != nil {
		return models.Task{}, err
	}
	if task.ListID != existing.ListID {
		if _, err := s.storages.Lists.GetList(ctx, task.ListID); err != nil {
			return models.Task{}, err
		}
	}

	now := s.clock.Now()
	task.Title = strings.TrimSpace(task.Title)
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = now
	if task.TagIDs == nil {
		task.TagIDs = []uuid.UUID{}
	}
	switch {
	case !task.Completed:
		task.CompletedAt = nil
	case existing.Completed && existing.CompletedAt != nil:
		task.CompletedAt = existing.CompletedAt
	default:
		task.CompletedAt = &now
	}

	if err := s.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.save(ctx, task)
}

func (s *clientTaskService) FindTask(ctx context.Context, ref string) (models.Task, error) {
	return s.storages.Tasks.FindTaskByPrefix(ctx, strings.TrimSpace(ref))
}

func (s *clientTaskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.storages.Tasks.ListTasks(ctx, filter)
}

func (s *clientTaskService) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (models.Task, error) {
	task, err := s.storages.Tasks.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if task.Completed == completed {
		return task, nil
	}

	if completed {
		task.Complete(s.clock.Now())
	} else {
		task.Uncomplete(s.clock.Now())
	}
	return s.save(ctx, task)
}

func (s *clientTaskService) ToggleTask(ctx context.Context, id uuid.UUID) (models.Task, error) {
	task, err := s.storages.Tasks.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}

	task.Toggle(s.clock.Now())
	return s.save(ctx, task)
}

func (s *clientTaskService) CyclePriority(ctx context.Context, id uuid.UUID) (models.Task, error) {
	task, err := s.storages.Tasks.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}

	task.Priority = task.Priority.Next()
	task.Touch(s.clock.Now())
	return s.save(ctx, task)
}

func (s *clientTaskService) save(ctx context.Context, task models.Task) (models.Task, error) {
	if err := s.storages.Tasks.UpsertTask(ctx, task); err != nil {
		return models.Task{}, err
	}
	s.markPending()
	return task, nil
}

func (s *clientTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.storages.Tasks.GetTask(ctx, id); err != nil {
		return err
	}

	now := s.clock.Now()
	err := s.storages.WithTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Tasks.DeleteTaskByID(ctx, id); err != nil {
			return err
		}
		return repos.Tombstones.RecordTombstone(ctx, models.Tombstone{ID: id, RecordType: models.RecordTypeTask, DeletedAt: now})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientTaskService.DeleteTask").
			Str("task_id", id.String()).
			Msg("failed to delete task")
		return err
	}

	s.markPending()
	return nil
}

// ── Lists ──

func (s *clientTaskService) CreateList(ctx context.Context, name string) (models.List, error) {
	name = strings.TrimSpace(name)
	if err := s.ensureListNameFree(ctx, name, uuid.Nil); err != nil {
		return models.List{}, err
	}

	lists, err := s.storages.Lists.GetLists(ctx)
	if err != nil {
		return models.List{}, err
	}

	now := s.clock.Now()
	list := models.NewList(name)
	list.CreatedAt = now
	list.UpdatedAt = now
	list.SortOrder = len(lists)

	if err := s.validator.Validate(ctx, list); err != nil {
		return models.List{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.storages.Lists.UpsertList(ctx, list); err != nil {
		return models.List{}, err
	}

	s.markPending()
	return list, nil
}

func (s *clientTaskService) RenameList(ctx context.Context, id uuid.UUID, name string) (models.List, error) {
	list, err := s.storages.Lists.GetList(ctx, id)
	if err != nil {
		return models.List{}, err
	}
	if list.IsInbox {
		return models.List{}, ErrCannotRenameInbox
	}

	name = strings.TrimSpace(name)
	if err := s.ensureListNameFree(ctx, name, id); err != nil {
		return models.List{}, err
	}

	list.Name = name
	list.UpdatedAt = s.clock.Now()
	if err := s.validator.Validate(ctx, list); err != nil {
		return models.List{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.storages.Lists.UpsertList(ctx, list); err != nil {
		return models.List{}, err
	}

	s.markPending()
	return list, nil
}

func (s *clientTaskService) ensureListNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.storages.Lists.GetListByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrListNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return fmt.Errorf("%w: %q", ErrListNameTaken, name)
	}
	return nil
}

func (s *clientTaskService) GetLists(ctx context.Context) ([]models.List, error) {
	return s.storages.Lists.GetLists(ctx)
}

func (s *clientTaskService) FindList(ctx context.Context, ref string) (models.List, error) {
	ref = strings.TrimSpace(ref)

	list, err := s.storages.Lists.GetListByName(ctx, ref)
	if !errors.Is(err, store.ErrListNotFound) {
		return list, err
	}
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		return s.storages.Lists.GetList(ctx, id)
	}
	return models.List{}, err
}

func (s *clientTaskService) Inbox(ctx context.Context) (models.List, error) {
	return s.storages.Lists.GetInbox(ctx)
}

func (s *clientTaskService) DeleteList(ctx context.Context, id uuid.UUID) (int64, error) {
	list, err := s.storages.Lists.GetList(ctx, id)
	if err != nil {
		return 0, err
	}
	if list.IsInbox {
		return 0, store.ErrCannotDeleteInbox
	}

	now := s.clock.Now()
	var moved int64
	err = s.storages.WithTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		inbox, err := repos.Lists.GetInbox(ctx)
		if err != nil {
			return err
		}
		if moved, err = repos.Tasks.MoveTasksToList(ctx, id, inbox.ID, now); err != nil {
			return err
		}
		if err := repos.Lists.DeleteListByID(ctx, id); err != nil {
			return err
		}
		return repos.Tombstones.RecordTombstone(ctx, models.Tombstone{ID: id, RecordType: models.RecordTypeList, DeletedAt: now})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientTaskService.DeleteList").
			Str("list_id", id.String()).
			Msg("failed to delete list")
		return 0, err
	}

	s.markPending()
	return moved, nil
}

func (s *clientTaskService) CountOpenTasks(ctx context.Context) (map[uuid.UUID]int, error) {
	return s.storages.Tasks.CountOpenTasksByList(ctx)
}

// ── Tags ──

func (s *clientTaskService) CreateTag(ctx context.Context, name string) (models.Tag, error) {
	name = strings.TrimSpace(name)

	_, err := s.storages.Tags.GetTagByName(ctx, name)
	switch {
	case err == nil:
		return models.Tag{}, fmt.Errorf("%w: %q", ErrTagNameTaken, name)
	case !errors.Is(err, store.ErrTagNotFound):
		return models.Tag{}, err
	}

	tag := models.NewTag(name)
	tag.CreatedAt = s.clock.Now()
	if err := s.validator.Validate(ctx, tag); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.storages.Tags.UpsertTag(ctx, tag); err != nil {
		return models.Tag{}, err
	}

	s.markPending()
	return tag, nil
}

func (s *clientTaskService) EnsureTag(ctx context.Context, name string) (models.Tag, error) {
	tag, err := s.storages.Tags.GetTagByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, store.ErrTagNotFound) {
		return s.CreateTag(ctx, name)
	}
	return tag, err
}

func (s *clientTaskService) GetTags(ctx context.Context) ([]models.Tag, error) {
	return s.storages.Tags.GetTags(ctx)
}

func (s *clientTaskService) FindTag(ctx context.Context, ref string) (models.Tag, error) {
	ref = strings.TrimSpace(ref)

	tag, err := s.storages.Tags.GetTagByName(ctx, ref)
	if !errors.Is(err, store.ErrTagNotFound) {
		return tag, err
	}

	id, parseErr := uuid.Parse(ref)
	if parseErr != nil {
		return models.Tag{}, err
	}
	tags, listErr := s.storages.Tags.GetTags(ctx)
	if listErr != nil {
		return models.Tag{}, listErr
	}
	for _, t := range tags {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Tag{}, err
}

func (s *clientTaskService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	now := s.clock.Now()
	err := s.storages.WithTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Tags.DeleteTagByID(ctx, id); err != nil {
			return err
		}
		return repos.Tombstones.RecordTombstone(ctx, models.Tombstone{ID: id, RecordType: models.RecordTypeTag, DeletedAt: now})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientTaskService.DeleteTag").
			Str("tag_id", id.String()).
			Msg("failed to delete tag")
		return err
	}

	s.markPending()
	return nil
}
