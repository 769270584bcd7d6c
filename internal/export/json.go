// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

type jsonDocument struct {
	ExportedAt string        `json:"exported_at"`
	Lists      []models.List `json:"lists"`
	Tags       []models.Tag  `json:"tags"`
	Tasks      []models.Task `json:"tasks"`
}

func writeJSON(w io.Writer, snap Snapshot, now time.Time) error {
	doc := jsonDocument{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Lists:      orEmpty(snap.Lists),
		Tags:       orEmpty(snap.Tags),
		Tasks:      orEmpty(snap.Tasks),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
