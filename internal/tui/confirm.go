// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/google/uuid"

type deleteTarget int

const (
	deleteTask deleteTarget = iota
	deleteList
)

type confirmModel struct {
	target  deleteTarget
	id      uuid.UUID
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?"
	if m.target == deleteList {
		content += "\nIts tasks will be moved to the inbox."
	}
	content += "\n\ny yes    n no"
	return overlayBoxStyle.Render(content)
}
