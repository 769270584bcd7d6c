// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ForeignKeyRelaxer runs fn on a connection with foreign key enforcement
// switched off. *store.ClientStorages implements it.
type ForeignKeyRelaxer interface {
	WithForeignKeysRelaxed(ctx context.Context, fn func(ctx context.Context, target store.MergeTarget) error) error
}

type mergeApplier struct {
	storage ForeignKeyRelaxer
	clock   clock.Clock
	logger  *logger.Logger
}

func NewMergeApplier(storage ForeignKeyRelaxer, clk clock.Clock, logger *logger.Logger) MergeApplier {
	return &mergeApplier{
		storage: storage,
		clock:   clock.OrReal(clk),
		logger:  logger,
	}
}

// batch is a change set partitioned in apply order.
type batch struct {
	lists     []models.List
	tags      []models.Tag
	tasks     []models.Task
	links     []models.TaskTagLink
	deletions []models.Tombstone
	live      map[uuid.UUID]struct{}
}

func partition(records []models.SyncRecord) batch {
	b := batch{live: make(map[uuid.UUID]struct{}, len(records))}

	for _, rec := range records {
		switch {
		case rec.Kind == models.KindList && rec.List != nil:
			b.lists = append(b.lists, *rec.List)
			b.live[rec.List.ID] = struct{}{}
		case rec.Kind == models.KindTag && rec.Tag != nil:
			b.tags = append(b.tags, *rec.Tag)
			b.live[rec.Tag.ID] = struct{}{}
		case rec.Kind == models.KindTask && rec.Task != nil:
			b.tasks = append(b.tasks, *rec.Task)
			b.live[rec.Task.ID] = struct{}{}
		case rec.Kind == models.KindTaskTag && rec.TaskTag != nil:
			b.links = append(b.links, *rec.TaskTag)
		case rec.Kind == models.KindDeleted && rec.Deleted != nil:
			b.deletions = append(b.deletions, *rec.Deleted)
		}
	}
	return b
}

// Apply implements [MergeApplier].
//
// A deletion whose id also arrives as a live record in the same batch is
// skipped and counted as applied, so a delete followed by a re-create ends
// with the record present.
func (a *mergeApplier) Apply(ctx context.Context, resp models.SyncResponse) (models.MergeResult, error) {
	log := logger.FromContext(ctx)
	b := partition(resp.Changes)
	result := models.MergeResult{Total: len(resp.Changes)}
	// records that matched no variant
	result.Failed = result.Total - len(b.lists) - len(b.tags) - len(b.tasks) - len(b.links) - len(b.deletions)

	count := func(err error, kind string, id uuid.UUID) {
		if err == nil {
			result.Applied++
			return
		}
		result.Failed++
		log.Warn().Err(err).
			Str("func", "mergeApplier.Apply").
			Str("kind", kind).
			Str("id", id.String()).
			Msg("failed to apply record")
	}

	err := a.storage.WithForeignKeysRelaxed(ctx, func(ctx context.Context, target store.MergeTarget) error {
		for _, l := range b.lists {
			count(target.UpsertList(ctx, l), string(models.KindList), l.ID)
		}
		for _, t := range b.tags {
			count(target.UpsertTag(ctx, t), string(models.KindTag), t.ID)
		}
		for _, t := range b.tasks {
			count(target.UpsertTask(ctx, t), string(models.KindTask), t.ID)
		}
		for _, l := range b.links {
			count(target.UpsertTaskTag(ctx, l), string(models.KindTaskTag), l.TaskID)
		}

		var removedLists []uuid.UUID
		for _, d := range b.deletions {
			if _, recreated := b.live[d.ID]; recreated {
				count(nil, string(models.KindDeleted), d.ID)
				continue
			}

			var err error
			switch d.RecordType {
			case models.RecordTypeList:
				if err = target.DeleteListByID(ctx, d.ID); err == nil {
					removedLists = append(removedLists, d.ID)
				}
			case models.RecordTypeTag:
				err = target.DeleteTagByID(ctx, d.ID)
			case models.RecordTypeTaskTag:
				// links travel inside tasks' tag_ids
			default:
				err = target.DeleteTaskByID(ctx, d.ID)
			}
			count(err, string(models.KindDeleted), d.ID)
		}

		a.rehomeOrphans(ctx, target, removedLists)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "mergeApplier.Apply").Msg("merge guard failed")
		return result, fmt.Errorf("%w: %w", ErrMergeGuard, err)
	}

	log.Info().
		Str("func", "mergeApplier.Apply").
		Int("total", result.Total).
		Int("applied", result.Applied).
		Int("failed", result.Failed).
		Msg("merge applied")

	return result, nil
}

// rehomeOrphans moves tasks that still point at a deleted list into the
// inbox, the same way a local list deletion does.
func (a *mergeApplier) rehomeOrphans(ctx context.Context, target store.MergeTarget, lists []uuid.UUID) {
	if len(lists) == 0 {
		return
	}
	log := logger.FromContext(ctx)

	inbox, err := target.GetInbox(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoInbox) {
			log.Warn().Err(err).Str("func", "mergeApplier.rehomeOrphans").Msg("cannot read inbox")
		}
		return
	}

	now := a.clock.Now()
	for _, id := range lists {
		if id == inbox.ID {
			continue
		}
		moved, err := target.MoveTasksToList(ctx, id, inbox.ID, now)
		if err != nil {
			log.Warn().Err(err).Str("func", "mergeApplier.rehomeOrphans").Str("list_id", id.String()).Msg("cannot move orphaned tasks")
			continue
		}
		if moved > 0 {
			log.Info().Str("list_id", id.String()).Int64("moved", moved).Msg("moved orphaned tasks to inbox")
		}
	}
}
