// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func TestAdd_WithAllFlags(t *testing.T) {
	h := newFakeClockHarness(t)

	out := h.mustRun("add", "buy", "milk",
		"--due", "2030-01-05", "--priority", "high", "--tag", "errands,home",
		"--url", "https://shop.example", "--description", "two litres")
	assert.Contains(t, out, "✓ Added: buy milk (due 2030-01-05)")

	out = h.mustRun("list")
	assert.Contains(t, out, "[ ] !!  buy milk  Inbox")
	assert.Contains(t, out, "#errands")
	assert.Contains(t, out, "#home")
	assert.Contains(t, out, "🔗")
	assert.Contains(t, out, "due 2030-01-05")

	out = h.mustRun("tags")
	assert.Contains(t, out, "● errands")
	assert.Contains(t, out, "● home")
}

func TestAdd_NaturalLanguageDue(t *testing.T) {
	h := newFakeClockHarness(t)

	out := h.mustRun("add", "pay rent", "--due", "tomorrow")
	assert.Contains(t, out, "(due 2030-01-02)")
}

func TestAdd_Errors(t *testing.T) {
	h := newFakeClockHarness(t)

	_, err := h.run("add", "x", "--priority", "asap")
	assert.ErrorIs(t, err, models.ErrUnknownPriority)

	_, err = h.run("add", "x", "--due", "someday maybe")
	assert.ErrorIs(t, err, utils.ErrInvalidDueDate)

	_, err = h.run("add", "x", "--list", "Nowhere")
	assert.ErrorIs(t, err, store.ErrListNotFound)

	_, err = h.run("add", "  ")
	assert.ErrorIs(t, err, errEmptyTitle)

	_, err = h.run("add")
	assert.Error(t, err, "a title is required")
}

func TestAdd_ToListCaseInsensitive(t *testing.T) {
	h := newFakeClockHarness(t)
	h.mustRun("lists", "add", "Work")

	h.addTask("write report", "--list", "work")
	h.addTask("buy milk")

	out := h.mustRun("list", "--list", "Work")
	assert.Contains(t, out, "write report  Work")
	assert.NotContains(t, out, "buy milk")

	out = h.mustRun("ls", "--json")
	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	assert.Len(t, tasks, 2)
}

func TestAdd_DefaultListFromConfig(t *testing.T) {
	h := newFakeClockHarness(t)
	h.mustRun("lists", "add", "Work")

	t.Setenv("APP_DEFAULT_LIST", "Work")
	h.addTask("write report")
	assert.Contains(t, h.mustRun("list"), "write report  Work")

	// пропавший список по умолчанию не мешает добавлять задачи
	t.Setenv("APP_DEFAULT_LIST", "Gone")
	out := h.mustRun("add", "buy milk")
	assert.Contains(t, out, `Default list "Gone" not found`)
	assert.Contains(t, h.mustRun("list"), "buy milk  Inbox")
}

func TestList_Filters(t *testing.T) {
	h := newFakeClockHarness(t)
	h.addTask("call mom", "--priority", "urgent", "--tag", "family")
	h.addTask("buy milk", "--priority", "low")

	out := h.mustRun("list", "--tag", "family")
	assert.Contains(t, out, "call mom")
	assert.NotContains(t, out, "buy milk")

	out = h.mustRun("list", "--priority", "low")
	assert.Contains(t, out, "buy milk")
	assert.NotContains(t, out, "call mom")

	out = h.mustRun("list", "--search", "MILK")
	assert.Contains(t, out, "buy milk")

	assert.Contains(t, h.mustRun("list", "--search", "nothing"), "No tasks found.")

	_, err := h.run("list", "--tag", "missing")
	assert.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestDoneAndUndo(t *testing.T) {
	h := newFakeClockHarness(t)
	id := h.addTask("buy milk")
	h.addTask("call mom")

	out := h.mustRun("done", "milk")
	assert.Contains(t, out, "✓ Completed: buy milk")

	out = h.mustRun("list")
	assert.NotContains(t, out, "buy milk", "completed tasks are hidden")
	assert.Contains(t, h.mustRun("list", "--all"), "[x]")
	assert.Contains(t, h.mustRun("list", "--show-completed"), "buy milk")

	out = h.mustRun("undo", id)
	assert.Contains(t, out, "↺ Reopened: buy milk")
	assert.Contains(t, h.mustRun("list"), "[ ]     buy milk")

	_, err := h.run("done", "no such task")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestDelete_Confirmation(t *testing.T) {
	h := newFakeClockHarness(t)
	h.addTask("buy milk")

	out, err := h.runWithInput("n\n", "delete", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, `Delete "buy milk"? [y/N]`)
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, h.mustRun("list"), "buy milk")

	out, err = h.runWithInput("yes\n", "rm", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Deleted: buy milk")
	assert.Contains(t, h.mustRun("list"), "No tasks found.")
}

func TestDelete_Force(t *testing.T) {
	h := newFakeClockHarness(t)
	id := h.addTask("buy milk")

	out := h.mustRun("delete", id, "--force")
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "✓ Deleted: buy milk")
}
