// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

type syncStateRepository struct {
	q      DBTX
	logger *logger.Logger
}

func NewSyncStateRepository(q DBTX, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		q:      q,
		logger: logger,
	}
}

func (r *syncStateRepository) GetLastSync(ctx context.Context) (*time.Time, error) {
	return r.getTime(ctx, syncKeyLastSync)
}

func (r *syncStateRepository) SetLastSync(ctx context.Context, t time.Time) error {
	return r.setTime(ctx, syncKeyLastSync, t)
}

func (r *syncStateRepository) GetBuildCursor(ctx context.Context) (*time.Time, error) {
	return r.getTime(ctx, syncKeyBuildCursor)
}

func (r *syncStateRepository) SetBuildCursor(ctx context.Context, t time.Time) error {
	return r.setTime(ctx, syncKeyBuildCursor, t)
}

func (r *syncStateRepository) ClearLastSync(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, deleteSyncMetadata, syncKeyLastSync, syncKeyBuildCursor); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *syncStateRepository) getTime(ctx context.Context, key string) (*time.Time, error) {
	var value string
	err := r.q.QueryRowContext(ctx, getSyncMetadata, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.getTime").
			Str("key", key).
			Msg("failed to read sync metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	t, err := parseTime(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *syncStateRepository) setTime(ctx context.Context, key string, t time.Time) error {
	if _, err := r.q.ExecContext(ctx, setSyncMetadata, key, formatTime(t)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.setTime").
			Str("key", key).
			Time("value", t).
			Msg("failed to write sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
