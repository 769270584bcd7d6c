// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// sqlite is the squirrel builder with SQLite "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var taskColumns = []string{
	"id", "title", "description", "url", "priority", "completed",
	"list_id", "created_at", "updated_at", "completed_at", "due_date",
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// priorityRankExpr orders urgent first.
const priorityRankExpr = `CASE t.priority WHEN 'urgent' THEN 3 WHEN 'high' THEN 2 WHEN 'medium' THEN 1 ELSE 0 END DESC`

// idStrings converts ids for squirrel: uuid.UUID is a byte array and would
// otherwise be expanded into an IN list of 16 bytes.
func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// buildSelectTasksQuery builds the filtered task listing. Completed tasks sort
// last, then by descending priority, then newest first.
func buildSelectTasksQuery(filter models.TaskFilter) (string, []any, error) {
	b := sqlite.Select(prefixed("t", taskColumns)...).From("tasks t")

	if filter.ListID != nil {
		b = b.Where(sq.Eq{"t.list_id": filter.ListID.String()})
	}
	if filter.TagID != nil {
		b = b.Where("EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = t.id AND tt.tag_id = ?)", filter.TagID.String())
	}
	if filter.Priority != nil {
		b = b.Where(sq.Eq{"t.priority": string(*filter.Priority)})
	}
	if !filter.IncludeCompleted {
		b = b.Where(sq.Eq{"t.completed": false})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		b = b.Where(sq.Or{
			sq.Expr(`t.title LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`t.description LIKE ? ESCAPE '\'`, pattern),
		})
	}

	query, args, err := b.OrderBy("t.completed", priorityRankExpr, "t.created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTasksSinceQuery(since string) (string, []any, error) {
	query, args, err := sqlite.Select(prefixed("t", taskColumns)...).
		From("tasks t").
		Where(sq.Gt{"t.updated_at": since}).
		OrderBy("t.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectTasksByPrefixQuery expects prefix to be validated as hex and
// dashes, so it needs no LIKE escaping.
func buildSelectTasksByPrefixQuery(prefix string) (string, []any, error) {
	query, args, err := sqlite.Select(prefixed("t", taskColumns)...).
		From("tasks t").
		Where(sq.Like{"t.id": strings.ToLower(prefix) + "%"}).
		Limit(2).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTaskTagsQuery(taskIDs []uuid.UUID) (string, []any, error) {
	query, args, err := sqlite.Select("task_id", "tag_id").
		From("task_tags").
		Where(sq.Eq{"task_id": idStrings(taskIDs)}).
		OrderBy("created_at", "tag_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteStaleTaskTagsQuery removes links of taskID whose tag is not in
// keep. An empty keep removes every link of the task.
func buildDeleteStaleTaskTagsQuery(taskID uuid.UUID, keep []uuid.UUID) (string, []any, error) {
	b := sqlite.Delete("task_tags").Where(sq.Eq{"task_id": taskID.String()})
	if len(keep) > 0 {
		b = b.Where(sq.NotEq{"tag_id": idStrings(keep)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountOpenTasksByListQuery() (string, []any, error) {
	query, args, err := sqlite.Select("list_id", "COUNT(*)").
		From("tasks").
		Where(sq.Eq{"completed": false}).
		GroupBy("list_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSinceQuery(table string, cols []string, column, since string) (string, []any, error) {
	query, args, err := sqlite.Select(cols...).
		From(table).
		Where(sq.Gt{column: since}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
