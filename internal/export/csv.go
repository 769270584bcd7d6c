// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"Title", "Description", "URL", "Priority", "Completed", "List", "Tags", "Due Date", "Created At"}

func writeCSV(w io.Writer, snap Snapshot) error {
	idx := newIndex(snap)
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, task := range snap.Tasks {
		listName := ""
		if list, ok := idx.lists[task.ListID]; ok {
			listName = list.Name
		}

		row := []string{
			task.Title,
			deref(task.Description),
			deref(task.URL),
			task.Priority.Title(),
			strconv.FormatBool(task.Completed),
			listName,
			strings.Join(idx.tagNames(task), "; "),
			formatDate(task.DueDate),
			task.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
