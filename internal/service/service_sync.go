// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// storedRecord is the server's current version of one entity.
type storedRecord struct {
	record    models.SyncRecord
	stamp     time.Time
	changedAt time.Time
}

// dataset holds the records of one owner.
type dataset struct {
	records    map[string]*storedRecord
	lastChange time.Time
}

// syncServerService is an in-memory last-writer-wins store. Records are
// compared by their own timestamp: updated_at for tasks and lists,
// created_at for tags and links, deleted_at for tombstones. On a tie a
// tombstone beats a live record; equal records are skipped.
type syncServerService struct {
	mu       sync.Mutex
	datasets map[string]*dataset
	clock    clock.Clock

	logger *logger.Logger
}

func NewSyncServerService(clk clock.Clock, logger *logger.Logger) SyncServerService {
	return &syncServerService{
		datasets: make(map[string]*dataset),
		clock:    clock.OrReal(clk),
		logger:   logger,
	}
}

func (s *syncServerService) Sync(ctx context.Context, owner string, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[owner]
	if !ok {
		ds = &dataset{records: make(map[string]*storedRecord)}
		s.datasets[owner] = ds
	}

	// server time never goes backwards within a dataset, so the next
	// last_sync strictly separates this exchange from later ones
	now := s.clock.Now()
	if !now.After(ds.lastChange) {
		now = ds.lastChange.Add(time.Nanosecond)
	}
	ds.lastChange = now

	touched := make(map[string]struct{}, len(req.Changes))
	var (
		conflicts       []uuid.UUID
		conflictRecords []models.SyncRecord
		accepted        int
	)

	for _, rec := range req.Changes {
		key := recordKey(rec)
		stamp := recordStamp(rec)

		cur, exists := ds.records[key]
		switch {
		case !exists || wins(rec, stamp, cur):
			ds.records[key] = &storedRecord{record: rec, stamp: stamp, changedAt: now}
			touched[key] = struct{}{}
			accepted++
		case stamp.Equal(cur.stamp) && rec.Kind == cur.record.Kind:
			touched[key] = struct{}{}
		default:
			touched[key] = struct{}{}
			conflicts = append(conflicts, rec.EntityID())
			conflictRecords = append(conflictRecords, cur.record)
		}
	}

	changed := make([]*storedRecord, 0)
	for key, sr := range ds.records {
		if _, ok := touched[key]; ok {
			continue
		}
		if req.LastSync != nil && !sr.changedAt.After(*req.LastSync) {
			continue
		}
		changed = append(changed, sr)
	}
	sort.SliceStable(changed, func(i, j int) bool {
		if !changed[i].changedAt.Equal(changed[j].changedAt) {
			return changed[i].changedAt.Before(changed[j].changedAt)
		}
		return kindRank(changed[i].record.Kind) < kindRank(changed[j].record.Kind)
	})

	resp := models.SyncResponse{
		ServerTime: now,
		Changes:    make([]models.SyncRecord, 0, len(changed)+len(conflictRecords)),
		Conflicts:  conflicts,
	}
	for _, sr := range changed {
		resp.Changes = append(resp.Changes, sr.record)
	}
	resp.Changes = append(resp.Changes, conflictRecords...)
	if resp.Conflicts == nil {
		resp.Conflicts = []uuid.UUID{}
	}

	log.Debug().
		Str("owner", owner).
		Str("device_id", req.DeviceID.String()).
		Int("received", len(req.Changes)).
		Int("accepted", accepted).
		Int("conflicts", len(conflicts)).
		Int("sent", len(resp.Changes)).
		Msg("sync exchange handled")

	return resp, nil
}

// wins reports whether rec replaces cur.
func wins(rec models.SyncRecord, stamp time.Time, cur *storedRecord) bool {
	if stamp.After(cur.stamp) {
		return true
	}
	if stamp.Equal(cur.stamp) {
		return rec.Kind == models.KindDeleted && cur.record.Kind != models.KindDeleted
	}
	return false
}

func recordKey(rec models.SyncRecord) string {
	if rec.Kind == models.KindTaskTag {
		return "task_tag:" + rec.TaskTag.TaskID.String() + ":" + rec.TaskTag.TagID.String()
	}
	return rec.EntityID().String()
}

func recordStamp(rec models.SyncRecord) time.Time {
	switch rec.Kind {
	case models.KindTask:
		return rec.Task.UpdatedAt
	case models.KindList:
		return rec.List.UpdatedAt
	case models.KindTag:
		return rec.Tag.CreatedAt
	case models.KindTaskTag:
		return rec.TaskTag.CreatedAt
	case models.KindDeleted:
		return rec.Deleted.DeletedAt
	}
	return time.Time{}
}

func kindRank(k models.RecordKind) int {
	switch k {
	case models.KindList:
		return 0
	case models.KindTag:
		return 1
	case models.KindTask:
		return 2
	case models.KindTaskTag:
		return 3
	default:
		return 4
	}
}
