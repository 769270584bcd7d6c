// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

var markdownPriority = map[models.Priority]string{
	models.PriorityUrgent: "🔴 ",
	models.PriorityHigh:   "🟠 ",
	models.PriorityLow:    "⚪ ",
}

// writeMarkdown groups tasks under one heading per list, in list order.
// Lists without tasks are skipped.
func writeMarkdown(w io.Writer, snap Snapshot, now time.Time) error {
	idx := newIndex(snap)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Tasks\n\nExported: %s\n\n", now.UTC().Format("2006-01-02 15:04:05 UTC"))

	for _, list := range snap.Lists {
		first := true
		for _, task := range snap.Tasks {
			if task.ListID != list.ID {
				continue
			}
			if first {
				fmt.Fprintf(bw, "## %s %s\n\n", list.Icon, list.Name)
				first = false
			}

			checkbox := "[ ]"
			if task.Completed {
				checkbox = "[x]"
			}
			fmt.Fprintf(bw, "- %s %s%s", checkbox, markdownPriority[task.Priority], task.Title)

			if names := idx.tagNames(task); len(names) > 0 {
				quoted := make([]string, len(names))
				for i, n := range names {
					quoted[i] = "`" + n + "`"
				}
				fmt.Fprintf(bw, " %s", strings.Join(quoted, " "))
			}
			bw.WriteString("\n")

			if task.Description != nil {
				fmt.Fprintf(bw, "  - %s\n", *task.Description)
			}
			if task.URL != nil {
				fmt.Fprintf(bw, "  - 🔗 %s\n", *task.URL)
			}
			if task.DueDate != nil {
				fmt.Fprintf(bw, "  - 📅 Due: %s\n", formatDate(task.DueDate))
			}
		}
		if !first {
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}
