// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Status line texts.
const (
	StatusNotConfigured = "not configured"
	StatusSyncing       = "syncing"
	StatusNeverSynced   = "not synced yet"
)

// SyncStatus is the process-local view of synchronization shown to the user.
// It is never persisted and starts empty on every launch.
type SyncStatus struct {
	Configured     bool
	Syncing        bool
	LastSync       *time.Time
	LastError      string
	PendingChanges int
}

// String renders the status line.
func (s SyncStatus) String() string {
	switch {
	case !s.Configured:
		return StatusNotConfigured
	case s.Syncing:
		return StatusSyncing
	case s.LastError != "":
		return "sync failed: " + s.LastError
	case s.LastSync != nil:
		return "synced " + s.LastSync.Local().Format(time.DateTime)
	default:
		return StatusNeverSynced
	}
}

// SyncTrigger tells why an attempt was started.
type SyncTrigger int

const (
	TriggerManual SyncTrigger = iota
	TriggerInterval
	TriggerMutation
	TriggerBootstrap
)

func (t SyncTrigger) String() string {
	switch t {
	case TriggerManual:
		return "manual"
	case TriggerInterval:
		return "interval"
	case TriggerMutation:
		return "mutation"
	case TriggerBootstrap:
		return "bootstrap"
	default:
		return "unknown"
	}
}

// SyncAttempt is a change set prepared for one exchange. Watermark is the
// server time of the last completed sync and goes out as last_sync; nil means
// a full sync. Since is the local cursor the change set was built from and
// PreparedAt is the local time the build started.
type SyncAttempt struct {
	Watermark  *time.Time
	Since      *time.Time
	PreparedAt time.Time
	Changes    []SyncRecord
	Full       bool
}

// MergeResult summarises one merge batch.
type MergeResult struct {
	Total   int
	Applied int
	Failed  int
}

// SyncReport is the outcome of a completed attempt.
type SyncReport struct {
	Trigger    SyncTrigger
	Uploaded   int
	Received   int
	Applied    int
	Failed     int
	Conflicts  []uuid.UUID
	ServerTime time.Time
	Err        error
}

// OK reports whether the attempt succeeded.
func (r SyncReport) OK() bool {
	return r.Err == nil
}
