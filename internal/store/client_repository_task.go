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

type taskRepository struct {
	q      DBTX
	logger *logger.Logger
}

func NewTaskRepository(q DBTX, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		q:      q,
		logger: logger,
	}
}

func (r *taskRepository) UpsertTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	err := inTx(ctx, r.q, func(q DBTX) error {
		_, err := q.ExecContext(ctx, upsertTask,
			task.ID,
			task.Title,
			nullString(task.Description),
			nullString(task.URL),
			string(task.Priority),
			task.Completed,
			task.ListID,
			formatTime(task.CreatedAt),
			formatTime(task.UpdatedAt),
			formatTimePtr(task.CompletedAt),
			formatTimePtr(task.DueDate),
		)
		if err != nil {
			return fmt.Errorf("%w: upsert task: %w", ErrExecutingStatement, err)
		}

		return replaceTaskTags(ctx, q, task)
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpsertTask").
			Str("task_id", task.ID.String()).
			Msg("failed to upsert task")
		return err
	}

	return nil
}

// replaceTaskTags makes the task's link rows equal to task.TagIDs. Links that
// already exist keep their created_at.
func replaceTaskTags(ctx context.Context, q DBTX, task models.Task) error {
	query, args, err := buildDeleteStaleTaskTagsQuery(task.ID, task.TagIDs)
	if err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete stale task tags: %w", ErrExecutingStatement, err)
	}

	for _, tagID := range task.TagIDs {
		if _, err := q.ExecContext(ctx, insertTaskTagIfMissing, task.ID, tagID, formatTime(task.UpdatedAt)); err != nil {
			return fmt.Errorf("%w: insert task tag: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func (r *taskRepository) GetTask(ctx context.Context, id uuid.UUID) (models.Task, error) {
	tasks, err := r.selectTasks(ctx, "taskRepository.GetTask",
		`SELECT `+strings.Join(prefixed("t", taskColumns), ", ")+` FROM tasks t WHERE t.id = ?`, id)
	if err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return tasks[0], nil
}

func (r *taskRepository) FindTaskByPrefix(ctx context.Context, prefix string) (models.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if id, err := uuid.Parse(prefix); err == nil {
		return r.GetTask(ctx, id)
	}
	if !isIDPrefix(prefix) {
		return models.Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, prefix)
	}

	query, args, err := buildSelectTasksByPrefixQuery(prefix)
	if err != nil {
		return models.Task{}, err
	}

	tasks, err := r.selectTasks(ctx, "taskRepository.FindTaskByPrefix", query, args...)
	if err != nil {
		return models.Task{}, err
	}

	switch len(tasks) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, prefix)
	case 1:
		return tasks[0], nil
	default:
		return models.Task{}, fmt.Errorf("%w: %q", ErrAmbiguousID, prefix)
	}
}

func (r *taskRepository) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return r.selectTasks(ctx, "taskRepository.GetAllTasks",
		`SELECT `+strings.Join(prefixed("t", taskColumns), ", ")+` FROM tasks t ORDER BY t.created_at`)
}

func (r *taskRepository) GetTasksSince(ctx context.Context, since time.Time) ([]models.Task, error) {
	query, args, err := buildSelectTasksSinceQuery(formatTime(since))
	if err != nil {
		return nil, err
	}
	return r.selectTasks(ctx, "taskRepository.GetTasksSince", query, args...)
}

func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query, args, err := buildSelectTasksQuery(filter)
	if err != nil {
		return nil, err
	}
	return r.selectTasks(ctx, "taskRepository.ListTasks", query, args...)
}

func (r *taskRepository) CountOpenTasksByList(ctx context.Context) (map[uuid.UUID]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountOpenTasksByListQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.CountOpenTasksByList").Msg("failed to count tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var listID uuid.UUID
		var n int
		if err := rows.Scan(&listID, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[listID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}

func (r *taskRepository) MoveTasksToList(ctx context.Context, from, to uuid.UUID, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, moveTasksToList, to, formatTime(now), from)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.MoveTasksToList").
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("failed to move tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func (r *taskRepository) DeleteTaskByID(ctx context.Context, id uuid.UUID) error {
	err := inTx(ctx, r.q, func(q DBTX) error {
		if _, err := q.ExecContext(ctx, deleteTaskTagsByTask, id); err != nil {
			return fmt.Errorf("%w: delete task tags: %w", ErrExecutingStatement, err)
		}
		if _, err := q.ExecContext(ctx, deleteTaskByID, id); err != nil {
			return fmt.Errorf("%w: delete task: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.DeleteTaskByID").
			Str("task_id", id.String()).
			Msg("failed to delete task")
		return err
	}
	return nil
}

// selectTasks runs a task SELECT and attaches each task's tag ids.
func (r *taskRepository) selectTasks(ctx context.Context, fn, query string, args ...any) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			rows.Close()
			log.Err(scanErr).Str("func", fn).Msg("failed to scan task row")
			return nil, scanErr
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	// the link query below must not overlap an open cursor on a pinned conn
	rows.Close()

	if err := r.attachTagIDs(ctx, tasks); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to load task tags")
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) attachTagIDs(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(tasks))
	index := make(map[uuid.UUID]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
	}

	query, args, err := buildSelectTaskTagsQuery(ids)
	if err != nil {
		return err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, tagID uuid.UUID
		if err := rows.Scan(&taskID, &tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[taskID]; ok {
			tasks[i].TagIDs = append(tasks[i].TagIDs, tagID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task                           models.Task
		description, url               sql.NullString
		priority, createdAt, updatedAt string
		completedAt, dueDate           sql.NullString
	)

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&url,
		&priority,
		&task.Completed,
		&task.ListID,
		&createdAt,
		&updatedAt,
		&completedAt,
		&dueDate,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	task.Description = stringPtr(description)
	task.URL = stringPtr(url)
	task.Priority = models.Priority(priority)
	task.TagIDs = make([]uuid.UUID, 0)

	var errs []error
	var e error
	task.CreatedAt, e = parseTime(createdAt)
	errs = append(errs, e)
	task.UpdatedAt, e = parseTime(updatedAt)
	errs = append(errs, e)
	task.CompletedAt, e = parseNullTime(completedAt)
	errs = append(errs, e)
	task.DueDate, e = parseNullTime(dueDate)
	errs = append(errs, e)

	if err := errors.Join(errs...); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func isIDPrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F', c == '-':
		default:
			return false
		}
	}
	return true
}
