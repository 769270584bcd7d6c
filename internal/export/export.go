// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

const dateLayout = time.DateOnly

// Source is the read side of the task service that an export needs.
type Source interface {
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetLists(ctx context.Context) ([]models.List, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
}

// Snapshot is the data written by one export.
type Snapshot struct {
	Tasks []models.Task
	Lists []models.List
	Tags  []models.Tag
}

// Collect reads every list, every tag and the tasks matching filter.
// Completed tasks are always included unless filter excludes them.
func Collect(ctx context.Context, src Source, filter models.TaskFilter) (Snapshot, error) {
	tasks, err := src.ListTasks(ctx, filter)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error reading tasks: %w", err)
	}
	lists, err := src.GetLists(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error reading lists: %w", err)
	}
	tags, err := src.GetTags(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error reading tags: %w", err)
	}

	return Snapshot{Tasks: tasks, Lists: lists, Tags: tags}, nil
}

// Write renders snap in the given format. now is stamped into the formats
// that carry an export time.
func Write(w io.Writer, format models.ExportFormat, snap Snapshot, now time.Time) error {
	switch format {
	case models.ExportJSON:
		return writeJSON(w, snap, now)
	case models.ExportTodoTxt:
		return writeTodoTxt(w, snap)
	case models.ExportMarkdown:
		return writeMarkdown(w, snap, now)
	case models.ExportCSV:
		return writeCSV(w, snap)
	}
	return fmt.Errorf("%w: %q", models.ErrUnknownExportFormat, format)
}

// index resolves list and tag ids to their records.
type index struct {
	lists map[uuid.UUID]models.List
	tags  map[uuid.UUID]models.Tag
}

func newIndex(snap Snapshot) index {
	idx := index{
		lists: make(map[uuid.UUID]models.List, len(snap.Lists)),
		tags:  make(map[uuid.UUID]models.Tag, len(snap.Tags)),
	}
	for _, l := range snap.Lists {
		idx.lists[l.ID] = l
	}
	for _, t := range snap.Tags {
		idx.tags[t.ID] = t
	}
	return idx
}

// tagNames skips ids whose tag is unknown.
func (idx index) tagNames(task models.Task) []string {
	names := make([]string, 0, len(task.TagIDs))
	for _, id := range task.TagIDs {
		if tag, ok := idx.tags[id]; ok {
			names = append(names, tag.Name)
		}
	}
	return names
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
