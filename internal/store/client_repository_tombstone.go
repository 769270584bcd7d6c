// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type tombstoneRepository struct {
	q      DBTX
	logger *logger.Logger
}

func NewTombstoneRepository(q DBTX, logger *logger.Logger) TombstoneRepository {
	return &tombstoneRepository{
		q:      q,
		logger: logger,
	}
}

func (r *tombstoneRepository) RecordTombstone(ctx context.Context, tombstone models.Tombstone) error {
	_, err := r.q.ExecContext(ctx, recordTombstone,
		tombstone.ID,
		string(tombstone.RecordType),
		formatTime(tombstone.DeletedAt),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tombstoneRepository.RecordTombstone").
			Str("id", tombstone.ID.String()).
			Str("record_type", string(tombstone.RecordType)).
			Msg("failed to record tombstone")
		return fmt.Errorf("%w: record tombstone: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetTombstonesSince returns tombstones deleted after since. Stored type
// strings that are not recognised are read as task tombstones.
func (r *tombstoneRepository) GetTombstonesSince(ctx context.Context, since time.Time) ([]models.Tombstone, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, getTombstonesSince, formatTime(since))
	if err != nil {
		log.Err(err).Str("func", "tombstoneRepository.GetTombstonesSince").Msg("failed to query tombstones")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tombstones := make([]models.Tombstone, 0)
	for rows.Next() {
		var t models.Tombstone
		var recordType, deletedAt string

		if err := rows.Scan(&t.ID, &recordType, &deletedAt); err != nil {
			log.Err(err).Str("func", "tombstoneRepository.GetTombstonesSince").Msg("failed to scan tombstone row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if t.DeletedAt, err = parseTime(deletedAt); err != nil {
			return nil, err
		}
		t.RecordType = models.RecordTypeFromString(recordType)

		tombstones = append(tombstones, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tombstones, nil
}

func (r *tombstoneRepository) PurgeTombstonesBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, purgeTombstonesBefore, formatTime(before))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tombstoneRepository.PurgeTombstonesBefore").
			Msg("failed to purge tombstones")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
