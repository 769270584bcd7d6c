// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("#89b4fa"))
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
	completedStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overdueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	statusStyle      = lipgloss.NewStyle().Faint(true)
)

var priorityStyles = map[string]lipgloss.Style{
	"urgent": lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
	"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")),
	"medium": lipgloss.NewStyle(),
	"low":    lipgloss.NewStyle().Faint(true),
}
