// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	pragmaForeignKeysOff = `PRAGMA foreign_keys = OFF`
	pragmaForeignKeysOn  = `PRAGMA foreign_keys = ON`
	pragmaDataVersion    = `PRAGMA data_version`
)

// lists
const (
	listColumns = `id, name, description, icon, color, is_inbox, created_at, updated_at, sort_order`

	upsertList = `
		INSERT INTO lists (
			id,
			name,
			description,
			icon,
			color,
			is_inbox,
			created_at,
			updated_at,
			sort_order
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			icon = excluded.icon,
			color = excluded.color,
			is_inbox = excluded.is_inbox,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			sort_order = excluded.sort_order;`

	getListByID = `SELECT ` + listColumns + ` FROM lists WHERE id = ?;`

	getListByName = `SELECT ` + listColumns + ` FROM lists WHERE name = ? COLLATE NOCASE ORDER BY sort_order, created_at LIMIT 1;`

	getInbox = `SELECT ` + listColumns + ` FROM lists WHERE is_inbox = 1 ORDER BY sort_order, created_at LIMIT 1;`

	getAllLists = `SELECT ` + listColumns + ` FROM lists ORDER BY sort_order, name;`

	deleteListByID = `DELETE FROM lists WHERE id = ?;`

	moveTasksToList = `UPDATE tasks SET list_id = ?, updated_at = ? WHERE list_id = ?;`
)

// tags
const (
	tagColumns = `id, name, color, created_at`

	upsertTag = `
		INSERT INTO tags (id, name, color, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			created_at = excluded.created_at;`

	getTagByName = `SELECT ` + tagColumns + ` FROM tags WHERE name = ? COLLATE NOCASE LIMIT 1;`

	getAllTags = `SELECT ` + tagColumns + ` FROM tags ORDER BY name;`

	deleteTaskTagsByTag = `DELETE FROM task_tags WHERE tag_id = ?;`
	deleteTagByID       = `DELETE FROM tags WHERE id = ?;`

	upsertTaskTag = `
		INSERT INTO task_tags (task_id, tag_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (task_id, tag_id) DO UPDATE SET
			created_at = excluded.created_at;`
)

// tasks
const (
	upsertTask = `
		INSERT INTO tasks (
			id,
			title,
			description,
			url,
			priority,
			completed,
			list_id,
			created_at,
			updated_at,
			completed_at,
			due_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			url = excluded.url,
			priority = excluded.priority,
			completed = excluded.completed,
			list_id = excluded.list_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at,
			due_date = excluded.due_date;`

	deleteTaskTagsByTask = `DELETE FROM task_tags WHERE task_id = ?;`

	insertTaskTagIfMissing = `
		INSERT INTO task_tags (task_id, tag_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (task_id, tag_id) DO NOTHING;`

	deleteTaskByID = `DELETE FROM tasks WHERE id = ?;`
)

// tombstones
const (
	recordTombstone = `
		INSERT INTO tombstones (id, record_type, deleted_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			record_type = excluded.record_type,
			deleted_at = excluded.deleted_at;`

	getTombstonesSince = `SELECT id, record_type, deleted_at FROM tombstones WHERE deleted_at > ? ORDER BY deleted_at;`

	purgeTombstonesBefore = `DELETE FROM tombstones WHERE deleted_at <= ?;`
)

// sync metadata
const (
	syncKeyLastSync    = "last_sync"
	syncKeyBuildCursor = "build_cursor"

	getSyncMetadata = `SELECT value FROM sync_metadata WHERE key = ?;`

	setSyncMetadata = `
		INSERT INTO sync_metadata (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteSyncMetadata = `DELETE FROM sync_metadata WHERE key IN (?, ?);`
)
