// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldName       = "name"
	FieldPriority   = "priority"
	FieldListID     = "list_id"
	FieldTimestamps = "timestamps"
	FieldColor      = "color"
	FieldDeviceID   = "device_id"
	FieldChanges    = "changes"
	FieldRecordType = "record_type"
)

const (
	MaxTitleLen = 500
	MaxNameLen  = 100
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RecordValidator checks tasks, lists, tags and sync requests. It is shared by
// the client services and the reference server.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(value, fields...)
	case *models.Task:
		return v.validateTask(*value, fields...)

	case models.List:
		return v.validateList(value, fields...)
	case *models.List:
		return v.validateList(*value, fields...)

	case models.Tag:
		return v.validateTag(value, fields...)
	case *models.Tag:
		return v.validateTag(*value, fields...)

	case models.Tombstone:
		return v.validateTombstone(value, fields...)

	case models.SyncRecord:
		return v.validateRecord(value)

	case models.SyncRequest:
		return v.validateSyncRequest(value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateTask(task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldPriority, FieldListID, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if task.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := checkText(task.Title, MaxTitleLen, ErrEmptyTitle); err != nil {
				return err
			}
		case FieldPriority:
			if !isValidPriority(task.Priority) {
				return fmt.Errorf("%w: %q", ErrInvalidPriority, task.Priority)
			}
		case FieldListID:
			if task.ListID == uuid.Nil {
				return ErrInvalidListID
			}
		case FieldTimestamps:
			if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateList(list models.List, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if list.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if err := checkText(list.Name, MaxNameLen, ErrEmptyName); err != nil {
				return err
			}
		case FieldTimestamps:
			if list.CreatedAt.IsZero() || list.UpdatedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTag(tag models.Tag, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldColor, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if tag.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if err := checkText(tag.Name, MaxNameLen, ErrEmptyName); err != nil {
				return err
			}
		case FieldColor:
			if tag.Color != "" && !hexColor.MatchString(tag.Color) {
				return fmt.Errorf("%w: %q", ErrInvalidColor, tag.Color)
			}
		case FieldTimestamps:
			if tag.CreatedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTombstone(t models.Tombstone, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldRecordType, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if t.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldRecordType:
			switch t.RecordType {
			case models.RecordTypeTask, models.RecordTypeList, models.RecordTypeTag, models.RecordTypeTaskTag:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidRecordType, t.RecordType)
			}
		case FieldTimestamps:
			if t.DeletedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecord checks the payload of one change set entry.
func (v *RecordValidator) validateRecord(rec models.SyncRecord) error {
	switch rec.Kind {
	case models.KindTask:
		if rec.Task == nil {
			return ErrEmptyRecord
		}
		return v.validateTask(*rec.Task)
	case models.KindList:
		if rec.List == nil {
			return ErrEmptyRecord
		}
		return v.validateList(*rec.List)
	case models.KindTag:
		if rec.Tag == nil {
			return ErrEmptyRecord
		}
		return v.validateTag(*rec.Tag)
	case models.KindTaskTag:
		if rec.TaskTag == nil {
			return ErrEmptyRecord
		}
		if rec.TaskTag.TaskID == uuid.Nil || rec.TaskTag.TagID == uuid.Nil {
			return ErrInvalidID
		}
		return nil
	case models.KindDeleted:
		if rec.Deleted == nil {
			return ErrEmptyRecord
		}
		return v.validateTombstone(*rec.Deleted)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRecordType, rec.Kind)
	}
}

func (v *RecordValidator) validateSyncRequest(req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID, FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if req.DeviceID == uuid.Nil {
				return ErrInvalidDeviceID
			}
		case FieldChanges:
			for i, rec := range req.Changes {
				if err := v.validateRecord(rec); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkText(s string, max int, emptyErr error) error {
	if strings.TrimSpace(s) == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(s) > max {
		return fmt.Errorf("%w: max %d characters", ErrTooLong, max)
	}
	return nil
}

func isValidPriority(p models.Priority) bool {
	for _, known := range models.Priorities {
		if p == known {
			return true
		}
	}
	return false
}
