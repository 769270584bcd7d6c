// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DueDateLayout is the explicit due date format accepted everywhere.
const DueDateLayout = time.DateOnly

var ErrInvalidDueDate = errors.New("invalid due date")

var dueParser = newDueParser()

func newDueParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseDueDate accepts YYYY-MM-DD or an English phrase such as "tomorrow" or
// "next friday". Due dates fall at the end of the day, 23:59:59 UTC. Phrases
// are resolved relative to now. An empty input means no due date.
func ParseDueDate(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if d, err := time.Parse(DueDateLayout, s); err == nil {
		return endOfDay(d), nil
	}

	r, err := dueParser.Parse(s, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDueDate, s, err)
	}
	if r == nil || strings.TrimSpace(r.Text) != s {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}

	return endOfDay(r.Time), nil
}

// SplitDueDate looks for a due date phrase inside a task title, as typed in
// the add-task input: "pay rent next friday". It returns the title without
// the phrase and the due date, or the input unchanged and nil when no phrase
// is found.
func SplitDueDate(input string, now time.Time) (string, *time.Time) {
	input = strings.TrimSpace(input)

	r, err := dueParser.Parse(input, now)
	if err != nil || r == nil {
		return input, nil
	}

	title := strings.TrimSpace(input[:r.Index] + input[r.Index+len(r.Text):])
	if title == "" {
		return input, nil
	}
	return strings.Join(strings.Fields(title), " "), endOfDay(r.Time)
}

func endOfDay(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	return &d
}
