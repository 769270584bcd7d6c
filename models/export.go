// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ExportFormat selects the output of `taskkeeper export`.
type ExportFormat string

const (
	ExportJSON     ExportFormat = "json"
	ExportTodoTxt  ExportFormat = "todotxt"
	ExportMarkdown ExportFormat = "markdown"
	ExportCSV      ExportFormat = "csv"
)

// ParseExportFormat accepts the format names and their usual aliases.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return ExportJSON, nil
	case "todotxt", "todo.txt", "todo", "txt":
		return ExportTodoTxt, nil
	case "markdown", "md":
		return ExportMarkdown, nil
	case "csv":
		return ExportCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, s)
}

// Extension returns the conventional file extension without the dot.
func (f ExportFormat) Extension() string {
	switch f {
	case ExportTodoTxt:
		return "txt"
	case ExportMarkdown:
		return "md"
	default:
		return string(f)
	}
}
