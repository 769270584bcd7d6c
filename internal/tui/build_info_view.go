// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// renderHelpWindow shows the key reference and the build metadata.
func renderHelpWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	for _, binding := range helpLines() {
		h := binding.Help()
		fmt.Fprintf(&b, "%-8s %s\n", h.Key, h.Desc)
	}

	b.WriteString("\n")
	b.WriteString("taskkeeper ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return overlayBoxStyle.Render(renderPage("HELP", b.String(), "esc: back"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
