// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sunday = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestParseDueDate(t *testing.T) {
	t.Run("empty means none", func(t *testing.T) {
		due, err := ParseDueDate("  ", sunday)
		require.NoError(t, err)
		assert.Nil(t, due)
	})

	t.Run("explicit date ends the day", func(t *testing.T) {
		due, err := ParseDueDate("2026-03-05", sunday)
		require.NoError(t, err)
		require.NotNil(t, due)
		assert.Equal(t, time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC), *due)
	})

	t.Run("phrase", func(t *testing.T) {
		due, err := ParseDueDate("tomorrow", sunday)
		require.NoError(t, err)
		require.NotNil(t, due)
		assert.Equal(t, time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC), *due)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDueDate("someday maybe", sunday)
		require.ErrorIs(t, err, ErrInvalidDueDate)

		_, err = ParseDueDate("2026-13-45", sunday)
		require.ErrorIs(t, err, ErrInvalidDueDate)
	})
}

func TestSplitDueDate(t *testing.T) {
	title, due := SplitDueDate("pay rent tomorrow", sunday)
	assert.Equal(t, "pay rent", title)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC), *due)

	// без фразы с датой заголовок не меняется
	title, due = SplitDueDate("buy milk", sunday)
	assert.Equal(t, "buy milk", title)
	assert.Nil(t, due)

	// одна только дата не может быть заголовком
	title, due = SplitDueDate("tomorrow", sunday)
	assert.Equal(t, "tomorrow", title)
	assert.Nil(t, due)
}
