// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// fatih/color disables itself when stdout is not a terminal, so the same
// helpers produce plain text in pipes and tests.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	overdueColor = color.New(color.FgRed)

	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// shortIDLen is how many id characters the listings print. Any unique prefix
// is accepted back by done, undo and delete.
const shortIDLen = 8

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

func printInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

func printProgress(w io.Writer, msg string) {
	_, _ = infoColor.Fprintf(w, "⟳ %s\n", msg)
}

func printSection(w io.Writer, title string) {
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = fmt.Fprintln(w, value)
}

func shortID(id uuid.UUID) string {
	return id.String()[:shortIDLen]
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func priorityMarker(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return errorColor.Sprint("!!!")
	case models.PriorityHigh:
		return warningColor.Sprint("!! ")
	case models.PriorityLow:
		return dimColor.Sprint(".  ")
	default:
		return "   "
	}
}

// taskLine renders one row of `taskkeeper list`:
//
//	1b9d6bcd [ ] !!! renew passport  Inbox  #errands  due 2030-01-02
func taskLine(task models.Task, listNames, tagNames map[uuid.UUID]string, now time.Time) string {
	var b strings.Builder

	b.WriteString(dimColor.Sprint(shortID(task.ID)))
	b.WriteString(" ")
	b.WriteString(checkbox(task.Completed))
	b.WriteString(" ")
	b.WriteString(priorityMarker(task.Priority))
	b.WriteString(" ")
	if task.Completed {
		b.WriteString(dimColor.Sprint(task.Title))
	} else {
		b.WriteString(task.Title)
	}

	if name, ok := listNames[task.ListID]; ok {
		b.WriteString("  ")
		b.WriteString(infoColor.Sprint(name))
	}
	for _, id := range task.TagIDs {
		if name, ok := tagNames[id]; ok {
			b.WriteString("  #")
			b.WriteString(name)
		}
	}
	if task.URL != nil && *task.URL != "" {
		b.WriteString("  🔗")
	}
	if task.DueDate != nil {
		due := "due " + task.DueDate.UTC().Format(time.DateOnly)
		b.WriteString("  ")
		if task.IsOverdue(now) {
			b.WriteString(overdueColor.Sprint(due))
		} else {
			b.WriteString(due)
		}
	}

	return b.String()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
