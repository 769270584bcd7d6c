// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID(t *testing.T) {
	first, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)
	second, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first.String(), second.String(), "v7 ids sort by creation time")
}
