// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordType names the kind of entity a tombstone refers to.
type RecordType string

const (
	RecordTypeTask    RecordType = "task"
	RecordTypeList    RecordType = "list"
	RecordTypeTag     RecordType = "tag"
	RecordTypeTaskTag RecordType = "task_tag"
)

// RecordTypeFromString maps a stored tombstone type to a [RecordType].
// Unrecognised values fall back to [RecordTypeTask].
func RecordTypeFromString(s string) RecordType {
	switch RecordType(s) {
	case RecordTypeList:
		return RecordTypeList
	case RecordTypeTag:
		return RecordTypeTag
	case RecordTypeTaskTag:
		return RecordTypeTaskTag
	default:
		return RecordTypeTask
	}
}

// UnmarshalText rejects unknown record types arriving over the wire. A
// response from the server tolerates them, see [SyncResponse.UnmarshalJSON].
func (r *RecordType) UnmarshalText(text []byte) error {
	switch rt := RecordType(text); rt {
	case RecordTypeTask, RecordTypeList, RecordTypeTag, RecordTypeTaskTag:
		*r = rt
		return nil
	}
	return fmt.Errorf("%w: record_type %q", ErrUnknownRecordKind, string(text))
}

// Tombstone marks an entity deletion so that other devices can replay it.
type Tombstone struct {
	ID         uuid.UUID  `json:"id"`
	RecordType RecordType `json:"record_type"`
	DeletedAt  time.Time  `json:"deleted_at"`
}

// RecordKind is the value of the "type" discriminator of a [SyncRecord].
type RecordKind string

const (
	KindTask    RecordKind = "task"
	KindList    RecordKind = "list"
	KindTag     RecordKind = "tag"
	KindTaskTag RecordKind = "task_tag"
	KindDeleted RecordKind = "deleted"
)

// SyncRecord is one entry of a change set. Exactly one of the variant
// pointers is set, matching Kind.
//
// On the wire the variant's fields are flattened next to a "type"
// discriminator:
//
//	{"type":"list","id":"…","name":"Inbox",…}
//	{"type":"deleted","id":"…","record_type":"task","deleted_at":"…"}
type SyncRecord struct {
	Kind    RecordKind
	Task    *Task
	List    *List
	Tag     *Tag
	TaskTag *TaskTagLink
	Deleted *Tombstone
}

func TaskRecord(t Task) SyncRecord           { return SyncRecord{Kind: KindTask, Task: &t} }
func ListRecord(l List) SyncRecord           { return SyncRecord{Kind: KindList, List: &l} }
func TagRecord(t Tag) SyncRecord             { return SyncRecord{Kind: KindTag, Tag: &t} }
func TaskTagRecord(l TaskTagLink) SyncRecord { return SyncRecord{Kind: KindTaskTag, TaskTag: &l} }

// DeletedRecord builds a tombstone record.
func DeletedRecord(id uuid.UUID, recordType RecordType, deletedAt time.Time) SyncRecord {
	return SyncRecord{Kind: KindDeleted, Deleted: &Tombstone{ID: id, RecordType: recordType, DeletedAt: deletedAt}}
}

// EntityID returns the id of the entity the record describes. Task-tag links
// report the task id.
func (r SyncRecord) EntityID() uuid.UUID {
	switch r.Kind {
	case KindTask:
		return r.Task.ID
	case KindList:
		return r.List.ID
	case KindTag:
		return r.Tag.ID
	case KindTaskTag:
		return r.TaskTag.TaskID
	case KindDeleted:
		return r.Deleted.ID
	}
	return uuid.Nil
}

func (r SyncRecord) variant() (any, error) {
	switch r.Kind {
	case KindTask:
		if r.Task != nil {
			t := *r.Task
			if t.TagIDs == nil {
				t.TagIDs = []uuid.UUID{}
			}
			return &t, nil
		}
	case KindList:
		if r.List != nil {
			return r.List, nil
		}
	case KindTag:
		if r.Tag != nil {
			return r.Tag, nil
		}
	case KindTaskTag:
		if r.TaskTag != nil {
			return r.TaskTag, nil
		}
	case KindDeleted:
		if r.Deleted != nil {
			return r.Deleted, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordKind, r.Kind)
	}

	return nil, fmt.Errorf("%w: %s record has no payload", ErrMalformedRecord, r.Kind)
}

// MarshalJSON writes the variant's object with the "type" field prepended.
func (r SyncRecord) MarshalJSON() ([]byte, error) {
	v, err := r.variant()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + len(r.Kind) + 12)
	buf.WriteString(`{"type":`)
	kind, _ := json.Marshal(r.Kind)
	buf.Write(kind)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}

// UnmarshalJSON reads the discriminator first and then decodes the same
// object into the matching variant.
func (r *SyncRecord) UnmarshalJSON(data []byte) error {
	var head struct {
		Type RecordKind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	out := SyncRecord{Kind: head.Type}
	var target any
	switch head.Type {
	case KindTask:
		out.Task = &Task{}
		target = out.Task
	case KindList:
		out.List = &List{}
		target = out.List
	case KindTag:
		out.Tag = &Tag{}
		target = out.Tag
	case KindTaskTag:
		out.TaskTag = &TaskTagLink{}
		target = out.TaskTag
	case KindDeleted:
		out.Deleted = &Tombstone{}
		target = out.Deleted
	case "":
		return fmt.Errorf("%w: missing type", ErrMalformedRecord)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecordKind, head.Type)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s record: %w", head.Type, err)
	}
	if out.Task != nil && out.Task.TagIDs == nil {
		out.Task.TagIDs = []uuid.UUID{}
	}

	*r = out
	return nil
}

// SyncRequest is the body POSTed to the sync endpoint.
type SyncRequest struct {
	DeviceID uuid.UUID    `json:"device_id"`
	LastSync *time.Time   `json:"last_sync"`
	Changes  []SyncRecord `json:"changes"`
}

// SyncResponse is the server's reconciled view for one exchange.
type SyncResponse struct {
	ServerTime time.Time    `json:"server_time"`
	Changes    []SyncRecord `json:"changes"`
	Conflicts  []uuid.UUID  `json:"conflicts"`
}

// UnmarshalJSON keeps a batch usable when the server sends a record this
// client cannot read: an unknown or missing "type", or an unknown
// "record_type". Such a record decodes as an empty entry, which the merge
// counts as failed. Any other decoding error rejects the whole response.
func (r *SyncResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		ServerTime time.Time         `json:"server_time"`
		Changes    []json.RawMessage `json:"changes"`
		Conflicts  []uuid.UUID       `json:"conflicts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var changes []SyncRecord
	if raw.Changes != nil {
		changes = make([]SyncRecord, len(raw.Changes))
	}
	for i, msg := range raw.Changes {
		err := json.Unmarshal(msg, &changes[i])
		switch {
		case err == nil:
		case errors.Is(err, ErrUnknownRecordKind), errors.Is(err, ErrMalformedRecord):
			changes[i] = SyncRecord{}
		default:
			return fmt.Errorf("change %d: %w", i, err)
		}
	}

	*r = SyncResponse{ServerTime: raw.ServerTime, Changes: changes, Conflicts: raw.Conflicts}
	return nil
}
