// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

const uiDivider = "──────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

// fitText cuts v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func priorityMarker(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return "!!!"
	case models.PriorityHigh:
		return "!! "
	case models.PriorityLow:
		return ".  "
	default:
		return "   "
	}
}

func formatDue(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	switch days := int(day.Sub(today).Hours() / 24); {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	default:
		return due.Format(time.DateOnly)
	}
}

// renderTaskLine renders one row of the tasks pane.
func renderTaskLine(task models.Task, tagNames map[uuid.UUID]string, now time.Time, width int) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	var b strings.Builder
	b.WriteString(task.Title)
	for _, id := range task.TagIDs {
		if name, ok := tagNames[id]; ok {
			b.WriteString(" #")
			b.WriteString(name)
		}
	}
	if task.URL != nil && *task.URL != "" {
		b.WriteString(" 🔗")
	}

	line := fmt.Sprintf("%s %s %s", check, priorityMarker(task.Priority), b.String())
	due := formatDue(task.DueDate, now)

	avail := width
	if due != "" {
		avail -= len(due) + 2
	}
	line = fitText(line, avail)

	style := priorityStyles[string(task.Priority)]
	if task.Completed {
		style = completedStyle
	}
	line = style.Render(line)

	if due != "" {
		d := "  " + due
		if task.IsOverdue(now) {
			d = overdueStyle.Render(d)
		}
		line += d
	}

	return line
}
