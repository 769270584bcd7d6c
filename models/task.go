// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency level of a [Task]. On the wire and in the local
// database it is stored as its lowercase name.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority level from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority parses a case-insensitive priority name. An empty string
// yields [PriorityMedium].
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	case "medium", "m", "normal":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	case "urgent", "u":
		return PriorityUrgent, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Next returns the following priority, wrapping from urgent back to low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityUrgent
	default:
		return PriorityLow
	}
}

// Title returns the capitalised display name.
func (p Priority) Title() string {
	if p == "" {
		return "Medium"
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Task is a single to-do item. Every task belongs to exactly one [List] and
// may carry any number of tags.
//
// Optional fields are pointers so that they serialise as JSON null, which is
// what the sync server expects for absent values.
type Task struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	URL         *string     `json:"url"`
	Priority    Priority    `json:"priority"`
	Completed   bool        `json:"completed"`
	ListID      uuid.UUID   `json:"list_id"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	CompletedAt *time.Time  `json:"completed_at"`
	DueDate     *time.Time  `json:"due_date"`
}

// NewTask returns an open, medium-priority task in the given list with fresh
// id and timestamps.
func NewTask(title string, listID uuid.UUID) Task {
	now := time.Now().UTC()
	return Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  PriorityMedium,
		ListID:    listID,
		TagIDs:    []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Complete marks the task done at now.
func (t *Task) Complete(now time.Time) {
	now = now.UTC()
	t.Completed = true
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Uncomplete reopens the task.
func (t *Task) Uncomplete(now time.Time) {
	t.Completed = false
	t.CompletedAt = nil
	t.UpdatedAt = now.UTC()
}

// Toggle flips the completion state.
func (t *Task) Toggle(now time.Time) {
	if t.Completed {
		t.Uncomplete(now)
		return
	}
	t.Complete(now)
}

// Touch bumps UpdatedAt so the task is picked up by the next delta sync.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now.UTC()
}

// HasTag reports whether tagID is attached to the task.
func (t Task) HasTag(tagID uuid.UUID) bool {
	for _, id := range t.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// AddTag attaches tagID unless it is already present.
func (t *Task) AddTag(tagID uuid.UUID) {
	if !t.HasTag(tagID) {
		t.TagIDs = append(t.TagIDs, tagID)
	}
}

// IsOverdue reports whether an open task's due date lies before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// TaskFilter narrows task queries. Zero values mean "no constraint".
type TaskFilter struct {
	ListID           *uuid.UUID
	TagID            *uuid.UUID
	Priority         *Priority
	IncludeCompleted bool
	Search           string
}
