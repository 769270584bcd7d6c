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

type tagRepository struct {
	q      DBTX
	logger *logger.Logger
}

func NewTagRepository(q DBTX, logger *logger.Logger) TagRepository {
	return &tagRepository{
		q:      q,
		logger: logger,
	}
}

func (r *tagRepository) UpsertTag(ctx context.Context, tag models.Tag) error {
	_, err := r.q.ExecContext(ctx, upsertTag, tag.ID, tag.Name, tag.Color, formatTime(tag.CreatedAt))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.UpsertTag").
			Str("tag_id", tag.ID.String()).
			Msg("failed to upsert tag")
		return fmt.Errorf("%w: upsert tag: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *tagRepository) UpsertTaskTag(ctx context.Context, link models.TaskTagLink) error {
	_, err := r.q.ExecContext(ctx, upsertTaskTag, link.TaskID, link.TagID, formatTime(link.CreatedAt))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.UpsertTaskTag").
			Str("task_id", link.TaskID.String()).
			Str("tag_id", link.TagID.String()).
			Msg("failed to upsert task tag link")
		return fmt.Errorf("%w: upsert task tag: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *tagRepository) GetTagByName(ctx context.Context, name string) (models.Tag, error) {
	tag, err := scanTag(r.q.QueryRowContext(ctx, getTagByName, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, ErrTagNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tagRepository.GetTagByName").Msg("failed to get tag")
		return models.Tag{}, err
	}
	return tag, nil
}

func (r *tagRepository) GetTags(ctx context.Context) ([]models.Tag, error) {
	return r.selectTags(ctx, "tagRepository.GetTags", getAllTags)
}

func (r *tagRepository) GetTagsSince(ctx context.Context, since time.Time) ([]models.Tag, error) {
	query, args, err := buildSelectSinceQuery("tags", strings.Split(tagColumns, ", "), "created_at", formatTime(since))
	if err != nil {
		return nil, err
	}
	return r.selectTags(ctx, "tagRepository.GetTagsSince", query, args...)
}

func (r *tagRepository) DeleteTagByID(ctx context.Context, id uuid.UUID) error {
	err := inTx(ctx, r.q, func(q DBTX) error {
		if _, err := q.ExecContext(ctx, deleteTaskTagsByTag, id); err != nil {
			return fmt.Errorf("%w: delete tag links: %w", ErrExecutingStatement, err)
		}
		if _, err := q.ExecContext(ctx, deleteTagByID, id); err != nil {
			return fmt.Errorf("%w: delete tag: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.DeleteTagByID").
			Str("tag_id", id.String()).
			Msg("failed to delete tag")
		return err
	}
	return nil
}

func (r *tagRepository) selectTags(ctx context.Context, fn, query string, args ...any) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan tag row")
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tags, nil
}

func scanTag(row rowScanner) (models.Tag, error) {
	var tag models.Tag
	var createdAt string

	err := row.Scan(&tag.ID, &tag.Name, &tag.Color, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, err
	}
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if tag.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}
