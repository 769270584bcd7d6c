// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/models"
)

// dataLoadedMsg carries one snapshot of the lists pane and the tasks of the
// list that was selected when loading started.
type dataLoadedMsg struct {
	lists      []models.List
	openCounts map[uuid.UUID]int
	tags       []models.Tag
	tasks      []models.Task
	listID     *uuid.UUID
	err        error
}

// mutationDoneMsg reports a local change made from the UI.
type mutationDoneMsg struct {
	status string
	err    error
}

type pollTickMsg struct{}

// externalChangeMsg is sent from outside the program when another process
// committed to the database.
type externalChangeMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct {
	seq int
}
