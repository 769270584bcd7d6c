// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// todoPriority maps priorities to todo.txt letters; urgent is (A).
var todoPriority = map[models.Priority]string{
	models.PriorityUrgent: "A",
	models.PriorityHigh:   "B",
	models.PriorityMedium: "C",
	models.PriorityLow:    "D",
}

// writeTodoTxt writes one line per task:
//
//	(A) 2030-01-01 Title +List_Name @tag due:2030-01-15 url:https://...
//	x 2030-01-02 2030-01-01 Done task +Inbox
func writeTodoTxt(w io.Writer, snap Snapshot) error {
	idx := newIndex(snap)
	bw := bufio.NewWriter(w)

	for _, task := range snap.Tasks {
		var b strings.Builder

		if task.Completed {
			b.WriteString("x ")
			if task.CompletedAt != nil {
				b.WriteString(formatDate(task.CompletedAt) + " ")
			}
		} else {
			letter, ok := todoPriority[task.Priority]
			if !ok {
				letter = todoPriority[models.PriorityMedium]
			}
			b.WriteString("(" + letter + ") ")
		}

		b.WriteString(formatDate(&task.CreatedAt) + " ")
		b.WriteString(task.Title)

		if list, ok := idx.lists[task.ListID]; ok {
			b.WriteString(" +" + strings.ReplaceAll(list.Name, " ", "_"))
		}
		for _, name := range idx.tagNames(task) {
			b.WriteString(" @" + strings.ReplaceAll(name, " ", "_"))
		}
		if task.DueDate != nil {
			b.WriteString(" due:" + formatDate(task.DueDate))
		}
		if task.URL != nil {
			b.WriteString(" url:" + *task.URL)
		}

		b.WriteByte('\n')
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
