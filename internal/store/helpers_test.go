// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestStorages opens a migrated SQLite database in a temp directory.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{Path: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newMockStorages(t *testing.T) (*ClientStorages, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return newClientStorages(&DB{DB: db, logger: logger.Nop()}, "", logger.Nop()), mock, db
}

func ts(minute int) time.Time {
	return time.Date(2026, 3, 1, 10, minute, 0, 0, time.UTC)
}
