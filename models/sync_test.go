// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRecord_MarshalFlattensDiscriminator(t *testing.T) {
	list := NewInbox()

	raw, err := json.Marshal(ListRecord(list))
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(raw, &obj))

	assert.Equal(t, "list", obj["type"])
	assert.Equal(t, list.ID.String(), obj["id"])
	assert.Equal(t, "Inbox", obj["name"])
	assert.Equal(t, true, obj["is_inbox"])
	assert.NotContains(t, obj, "List", "variant must not be wrapped")
}

func TestSyncRecord_MarshalTaskWithNilTagsWritesEmptyArray(t *testing.T) {
	task := NewTask("buy milk", uuid.New())
	task.TagIDs = nil

	raw, err := json.Marshal(TaskRecord(task))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"tag_ids":[]`)
	assert.Contains(t, string(raw), `"description":null`)
	assert.Contains(t, string(raw), `"priority":"medium"`)
}

func TestSyncRecord_MarshalWithoutPayloadFails(t *testing.T) {
	_, err := json.Marshal(SyncRecord{Kind: KindTag})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = json.Marshal(SyncRecord{Kind: "folder"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRecordKind)
}

func TestSyncRecord_UnmarshalDeleted(t *testing.T) {
	id := uuid.New()
	raw := `{"type":"deleted","id":"` + id.String() + `","record_type":"task_tag","deleted_at":"2026-03-01T10:00:00Z"}`

	var rec SyncRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	require.Equal(t, KindDeleted, rec.Kind)
	require.NotNil(t, rec.Deleted)
	assert.Nil(t, rec.Task)
	assert.Equal(t, id, rec.Deleted.ID)
	assert.Equal(t, RecordTypeTaskTag, rec.Deleted.RecordType)
	assert.True(t, rec.Deleted.DeletedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, id, rec.EntityID())
}

func TestSyncRecord_UnmarshalRejectsUnknownWireValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{name: "unknown type", raw: `{"type":"folder","id":"x"}`, err: ErrUnknownRecordKind},
		{name: "missing type", raw: `{"id":"x"}`, err: ErrMalformedRecord},
		{
			name: "unknown tombstone record_type",
			raw:  `{"type":"deleted","id":"` + uuid.NewString() + `","record_type":"folder","deleted_at":"2026-03-01T10:00:00Z"}`,
			err:  ErrUnknownRecordKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec SyncRecord
			err := json.Unmarshal([]byte(tt.raw), &rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSyncResponse_UnmarshalMixedChanges(t *testing.T) {
	listID, taskID := uuid.New(), uuid.New()
	raw := `{
		"server_time": "2026-03-01T10:00:00.123456Z",
		"changes": [
			{"type":"task","id":"` + taskID.String() + `","title":"t","description":null,"url":null,
			 "priority":"urgent","completed":false,"list_id":"` + listID.String() + `","tag_ids":null,
			 "created_at":"2026-03-01T09:00:00Z","updated_at":"2026-03-01T09:00:00Z",
			 "completed_at":null,"due_date":null},
			{"type":"list","id":"` + listID.String() + `","name":"Work","description":null,"icon":"💼",
			 "color":null,"is_inbox":false,"created_at":"2026-03-01T09:00:00Z",
			 "updated_at":"2026-03-01T09:00:00Z","sort_order":3}
		],
		"conflicts": ["` + taskID.String() + `"]
	}`

	var resp SyncResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	require.Len(t, resp.Changes, 2)
	assert.Equal(t, KindTask, resp.Changes[0].Kind)
	assert.Equal(t, PriorityUrgent, resp.Changes[0].Task.Priority)
	assert.NotNil(t, resp.Changes[0].Task.TagIDs)
	assert.Equal(t, KindList, resp.Changes[1].Kind)
	assert.Equal(t, 3, resp.Changes[1].List.SortOrder)
	assert.Equal(t, []uuid.UUID{taskID}, resp.Conflicts)
	assert.Equal(t, 123456000, resp.ServerTime.Nanosecond())
}

func TestSyncResponse_UnknownRecordsDecodeEmpty(t *testing.T) {
	raw := `{
		"server_time": "2026-03-01T10:00:00Z",
		"changes": [
			{"type":"folder","id":"x"},
			{"id":"x"},
			{"type":"deleted","id":"` + uuid.NewString() + `","record_type":"folder","deleted_at":"2026-03-01T10:00:00Z"},
			{"type":"tag","id":"` + uuid.NewString() + `","name":"home","color":"#fff","created_at":"2026-03-01T09:00:00Z"}
		],
		"conflicts": []
	}`

	var resp SyncResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Changes, 4)
	for _, rec := range resp.Changes[:3] {
		assert.Equal(t, SyncRecord{}, rec)
	}
	assert.Equal(t, KindTag, resp.Changes[3].Kind)

	var empty SyncResponse
	require.NoError(t, json.Unmarshal([]byte(`{"server_time":"2026-03-01T10:00:00Z","changes":null}`), &empty))
	assert.Nil(t, empty.Changes)

	err := json.Unmarshal([]byte(`{"server_time":"2026-03-01T10:00:00Z","changes":[{"type":"task","id":"x"}]}`), &resp)
	assert.Error(t, err, "a broken payload still rejects the response")
}

func TestRecordTypeFromString_FallsBackToTask(t *testing.T) {
	assert.Equal(t, RecordTypeList, RecordTypeFromString("list"))
	assert.Equal(t, RecordTypeTag, RecordTypeFromString("tag"))
	assert.Equal(t, RecordTypeTaskTag, RecordTypeFromString("task_tag"))
	assert.Equal(t, RecordTypeTask, RecordTypeFromString("task"))
	// неизвестный тип трактуется как задача
	assert.Equal(t, RecordTypeTask, RecordTypeFromString("folder"))
	assert.Equal(t, RecordTypeTask, RecordTypeFromString(""))
}

func TestSyncStatus_String(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "not configured", SyncStatus{}.String())
	assert.Equal(t, "not configured", SyncStatus{Syncing: true}.String())
	assert.Equal(t, "syncing", SyncStatus{Configured: true, Syncing: true, LastError: "x"}.String())
	assert.Equal(t, "sync failed: boom", SyncStatus{Configured: true, LastError: "boom", LastSync: &ts}.String())
	assert.Equal(t, "synced "+ts.Local().Format(time.DateTime), SyncStatus{Configured: true, LastSync: &ts}.String())
	assert.Equal(t, "not synced yet", SyncStatus{Configured: true}.String())
}

func TestTask_ToggleAndPriorityCycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	task := NewTask("write report", uuid.New())

	task.Toggle(now)
	require.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(now))
	assert.True(t, task.UpdatedAt.Equal(now))

	task.Toggle(now.Add(time.Minute))
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	p := PriorityLow
	for range Priorities {
		p = p.Next()
	}
	assert.Equal(t, PriorityLow, p)

	parsed, err := ParsePriority("URGENT")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, parsed)
	_, err = ParsePriority("asap")
	assert.ErrorIs(t, err, ErrUnknownPriority)
}
