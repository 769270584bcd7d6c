// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// TagPalette is the set of colors new tags are drawn from.
var TagPalette = []string{
	"#f38ba8", // red
	"#fab387", // peach
	"#f9e2af", // yellow
	"#a6e3a1", // green
	"#94e2d5", // teal
	"#89b4fa", // blue
	"#cba6f7", // mauve
	"#f5c2e7", // pink
	"#eba0ac", // maroon
	"#89dceb", // sky
}

// Tag is a label that can be attached to any number of tasks. Tags carry no
// update timestamp, so only their creation is visible to delta sync.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTag returns a tag with a random palette color.
func NewTag(name string) Tag {
	return Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     TagPalette[rand.IntN(len(TagPalette))],
		CreatedAt: time.Now().UTC(),
	}
}

// TaskTagLink is the explicit wire form of a task/tag association.
type TaskTagLink struct {
	TaskID    uuid.UUID `json:"task_id"`
	TagID     uuid.UUID `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
