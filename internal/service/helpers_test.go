// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// base lies after any wall-clock timestamp written by EnsureInbox, so deltas
// computed against it never pick up the inbox by accident.
var base = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

func at(minute int) time.Time {
	return base.Add(time.Duration(minute) * time.Minute)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestStorages opens a migrated SQLite database with an inbox.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := store.NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{Path: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestTaskService(t *testing.T) (ClientTaskService, *store.ClientStorages, *clock.FakeClock) {
	t.Helper()
	s := newTestStorages(t)
	clk := clock.NewFakeClock(at(0))
	return NewClientTaskService(s, clk, logger.Nop()), s, clk
}

func enabledSync() config.ClientSync {
	return config.ClientSync{
		Enabled:      true,
		Server:       "http://sync.local",
		Token:        "secret",
		IntervalSecs: 0,
	}
}

type countingNotifier struct {
	n atomic.Int32
}

func (c *countingNotifier) MarkPending() { c.n.Add(1) }
func (c *countingNotifier) count() int   { return int(c.n.Load()) }
