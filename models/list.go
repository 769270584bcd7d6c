// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// InboxName is the display name of the default list.
	InboxName = "Inbox"

	DefaultListIcon  = "📋"
	DefaultInboxIcon = "📥"
)

// List groups tasks. Exactly one list per device is flagged as the inbox and
// receives tasks whose list was deleted.
type List struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        string    `json:"icon"`
	Color       *string   `json:"color"`
	IsInbox     bool      `json:"is_inbox"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SortOrder   int       `json:"sort_order"`
}

// NewList returns a regular list with the default icon.
func NewList(name string) List {
	now := time.Now().UTC()
	return List{
		ID:        uuid.New(),
		Name:      name,
		Icon:      DefaultListIcon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewInbox returns the default inbox list. It sorts before every other list.
func NewInbox() List {
	l := NewList(InboxName)
	description := "Default list for new tasks"
	l.Description = &description
	l.Icon = DefaultInboxIcon
	l.IsInbox = true
	l.SortOrder = -1
	return l
}
