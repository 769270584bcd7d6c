// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type listRepository struct {
	q      DBTX
	logger *logger.Logger
}

func NewListRepository(q DBTX, logger *logger.Logger) ListRepository {
	return &listRepository{
		q:      q,
		logger: logger,
	}
}

func (r *listRepository) UpsertList(ctx context.Context, list models.List) error {
	_, err := r.q.ExecContext(ctx, upsertList,
		list.ID,
		list.Name,
		nullString(list.Description),
		list.Icon,
		nullString(list.Color),
		list.IsInbox,
		formatTime(list.CreatedAt),
		formatTime(list.UpdatedAt),
		list.SortOrder,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listRepository.UpsertList").
			Str("list_id", list.ID.String()).
			Msg("failed to upsert list")
		return fmt.Errorf("%w: upsert list: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *listRepository) GetList(ctx context.Context, id uuid.UUID) (models.List, error) {
	return r.getOne(ctx, "listRepository.GetList", getListByID, id)
}

func (r *listRepository) GetListByName(ctx context.Context, name string) (models.List, error) {
	return r.getOne(ctx, "listRepository.GetListByName", getListByName, strings.TrimSpace(name))
}

func (r *listRepository) GetInbox(ctx context.Context) (models.List, error) {
	list, err := r.getOne(ctx, "listRepository.GetInbox", getInbox)
	if errors.Is(err, ErrListNotFound) {
		return models.List{}, ErrNoInbox
	}
	return list, err
}

func (r *listRepository) GetLists(ctx context.Context) ([]models.List, error) {
	return r.selectLists(ctx, "listRepository.GetLists", getAllLists)
}

func (r *listRepository) GetListsSince(ctx context.Context, since time.Time) ([]models.List, error) {
	query, args, err := buildSelectSinceQuery("lists", strings.Split(listColumns, ", "), "updated_at", formatTime(since))
	if err != nil {
		return nil, err
	}
	return r.selectLists(ctx, "listRepository.GetListsSince", query, args...)
}

func (r *listRepository) DeleteListByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.q.ExecContext(ctx, deleteListByID, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listRepository.DeleteListByID").
			Str("list_id", id.String()).
			Msg("failed to delete list")
		return fmt.Errorf("%w: delete list: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *listRepository) getOne(ctx context.Context, fn, query string, args ...any) (models.List, error) {
	list, err := scanList(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, ErrListNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to get list")
		return models.List{}, err
	}
	return list, nil
}

func (r *listRepository) selectLists(ctx context.Context, fn, query string, args ...any) ([]models.List, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.List, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan list row")
			return nil, err
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return lists, nil
}

func scanList(row rowScanner) (models.List, error) {
	var (
		list                 models.List
		description, color   sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&list.ID,
		&list.Name,
		&description,
		&list.Icon,
		&color,
		&list.IsInbox,
		&createdAt,
		&updatedAt,
		&list.SortOrder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, err
	}
	if err != nil {
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	list.Description = stringPtr(description)
	list.Color = stringPtr(color)

	var errCreated, errUpdated error
	list.CreatedAt, errCreated = parseTime(createdAt)
	list.UpdatedAt, errUpdated = parseTime(updatedAt)
	if err := errors.Join(errCreated, errUpdated); err != nil {
		return models.List{}, err
	}

	return list, nil
}
