// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type changeSetBuilder struct {
	repos  store.Repositories
	logger *logger.Logger
}

func NewChangeSetBuilder(repos store.Repositories, logger *logger.Logger) ChangeSetBuilder {
	return &changeSetBuilder{repos: repos, logger: logger}
}

// Build implements [ChangeSetBuilder]. A full build carries no tombstones and
// no separate link records: tasks embed their tag ids. A delta build drops
// live records whose id also has a tombstone in the same delta.
func (b *changeSetBuilder) Build(ctx context.Context, watermark *time.Time) ([]models.SyncRecord, error) {
	if watermark == nil {
		return b.buildFull(ctx)
	}
	return b.buildDelta(ctx, *watermark)
}

func (b *changeSetBuilder) buildFull(ctx context.Context) ([]models.SyncRecord, error) {
	lists, err := b.repos.Lists.GetLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("error collecting lists: %w", err)
	}
	tags, err := b.repos.Tags.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("error collecting tags: %w", err)
	}
	tasks, err := b.repos.Tasks.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error collecting tasks: %w", err)
	}

	records := make([]models.SyncRecord, 0, len(lists)+len(tags)+len(tasks))
	for _, l := range lists {
		records = append(records, models.ListRecord(l))
	}
	for _, t := range tags {
		records = append(records, models.TagRecord(t))
	}
	for _, t := range tasks {
		records = append(records, models.TaskRecord(t))
	}

	logger.FromContext(ctx).Debug().
		Str("func", "changeSetBuilder.Build").
		Int("lists", len(lists)).
		Int("tags", len(tags)).
		Int("tasks", len(tasks)).
		Msg("built full change set")

	return records, nil
}

func (b *changeSetBuilder) buildDelta(ctx context.Context, since time.Time) ([]models.SyncRecord, error) {
	tombstones, err := b.repos.Tombstones.GetTombstonesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("error collecting tombstones: %w", err)
	}
	lists, err := b.repos.Lists.GetListsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("error collecting lists: %w", err)
	}
	tags, err := b.repos.Tags.GetTagsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("error collecting tags: %w", err)
	}
	tasks, err := b.repos.Tasks.GetTasksSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("error collecting tasks: %w", err)
	}

	// one tombstone per id, the latest wins
	deleted := make(map[uuid.UUID]models.Tombstone, len(tombstones))
	order := make([]uuid.UUID, 0, len(tombstones))
	for _, t := range tombstones {
		prev, seen := deleted[t.ID]
		if !seen {
			order = append(order, t.ID)
		}
		if !seen || t.DeletedAt.After(prev.DeletedAt) {
			deleted[t.ID] = t
		}
	}

	records := make([]models.SyncRecord, 0, len(lists)+len(tags)+len(tasks)+len(order))
	skipped := 0
	for _, l := range lists {
		if _, gone := deleted[l.ID]; gone {
			skipped++
			continue
		}
		records = append(records, models.ListRecord(l))
	}
	for _, t := range tags {
		if _, gone := deleted[t.ID]; gone {
			skipped++
			continue
		}
		records = append(records, models.TagRecord(t))
	}
	for _, t := range tasks {
		if _, gone := deleted[t.ID]; gone {
			skipped++
			continue
		}
		records = append(records, models.TaskRecord(t))
	}
	for _, id := range order {
		t := deleted[id]
		records = append(records, models.DeletedRecord(t.ID, t.RecordType, t.DeletedAt))
	}

	logger.FromContext(ctx).Debug().
		Str("func", "changeSetBuilder.Build").
		Time("since", since).
		Int("records", len(records)).
		Int("tombstones", len(order)).
		Int("shadowed", skipped).
		Msg("built delta change set")

	return records, nil
}
