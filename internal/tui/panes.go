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

const allTasksLabel = "All tasks"

// listsPane shows "All tasks" followed by every list. idx 0 is "All tasks".
type listsPane struct {
	lists  []models.List
	counts map[uuid.UUID]int
	idx    int
}

func (p listsPane) len() int {
	return len(p.lists) + 1
}

func (p listsPane) selectedList() (models.List, bool) {
	if p.idx <= 0 || p.idx > len(p.lists) {
		return models.List{}, false
	}
	return p.lists[p.idx-1], true
}

// selectedID returns nil when "All tasks" is selected.
func (p listsPane) selectedID() *uuid.UUID {
	list, ok := p.selectedList()
	if !ok {
		return nil
	}
	id := list.ID
	return &id
}

func (p listsPane) title() string {
	if list, ok := p.selectedList(); ok {
		return list.Icon + " " + list.Name
	}
	return allTasksLabel
}

// setLists replaces the lists and keeps the cursor on the same list when it
// still exists.
func (p *listsPane) setLists(lists []models.List, counts map[uuid.UUID]int) {
	prev := p.selectedID()
	p.lists = lists
	p.counts = counts

	if prev == nil {
		p.idx = 0
		return
	}
	p.idx = 0
	for i, l := range lists {
		if l.ID == *prev {
			p.idx = i + 1
			return
		}
	}
}

func (p *listsPane) moveTo(idx int) bool {
	idx = clamp(idx, 0, p.len()-1)
	if idx == p.idx {
		return false
	}
	p.idx = idx
	return true
}

func (p listsPane) View(width, height int, focused bool) string {
	total := 0
	for _, n := range p.counts {
		total += n
	}

	rows := make([]string, 0, p.len())
	rows = append(rows, listRow("🗂", allTasksLabel, total, width))
	for _, l := range p.lists {
		rows = append(rows, listRow(l.Icon, l.Name, p.counts[l.ID], width))
	}

	return renderPane("Lists", rows, p.idx, width, height, focused)
}

func listRow(icon, name string, open, width int) string {
	count := ""
	if open > 0 {
		count = fmt.Sprintf(" %d", open)
	}
	return fitText(icon+" "+name, width-len(count)-1) + count
}

type tasksPane struct {
	tasks []models.Task
	idx   int
}

func (p tasksPane) selected() (models.Task, bool) {
	if p.idx < 0 || p.idx >= len(p.tasks) {
		return models.Task{}, false
	}
	return p.tasks[p.idx], true
}

// setTasks replaces the tasks and keeps the cursor on the same task when it
// is still shown.
func (p *tasksPane) setTasks(tasks []models.Task) {
	prev, hadPrev := p.selected()
	p.tasks = tasks

	if hadPrev {
		for i, t := range tasks {
			if t.ID == prev.ID {
				p.idx = i
				return
			}
		}
	}
	p.idx = clamp(p.idx, 0, len(tasks)-1)
}

func (p *tasksPane) moveTo(idx int) {
	p.idx = clamp(idx, 0, len(p.tasks)-1)
}

func (p tasksPane) View(title string, tagNames map[uuid.UUID]string, now time.Time, width, height int, focused bool) string {
	rows := make([]string, 0, len(p.tasks))
	for _, t := range p.tasks {
		rows = append(rows, renderTaskLine(t, tagNames, now, width))
	}
	cursor := p.idx
	if len(rows) == 0 {
		rows = append(rows, helpStyle.Render("No tasks. Press a to add one."))
		cursor = -1
	}
	return renderPane(title, rows, cursor, width, height, focused)
}

// renderPane draws a bordered pane, scrolling so that the cursor row stays
// visible.
func renderPane(title string, rows []string, cursor, width, height int, focused bool) string {
	visible := max(height-2, 1)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(title, width)))
	b.WriteString("\n")
	for i := start; i < end; i++ {
		row := rows[i]
		if i == cursor && focused {
			row = selectedStyle.Render(row)
		} else if i == cursor {
			row = "› " + row
		}
		b.WriteString(row)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Width(width).Height(height).Render(b.String())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
