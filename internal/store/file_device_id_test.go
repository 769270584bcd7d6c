// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestLoadOrCreateDeviceID(t *testing.T) {
	t.Run("missing file mints and persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "device_id")

		id := LoadOrCreateDeviceID(path, logger.Nop())
		assert.NotEqual(t, uuid.Nil, id)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, id.String(), strings.TrimSpace(string(data)))

		assert.Equal(t, id, LoadOrCreateDeviceID(path, logger.Nop()), "second call reads the same id")
	})

	t.Run("existing file is reused", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "device_id")
		want := uuid.New()
		require.NoError(t, os.WriteFile(path, []byte("  "+want.String()+"\n\n"), 0o600))

		assert.Equal(t, want, LoadOrCreateDeviceID(path, logger.Nop()))
	})

	t.Run("corrupt file is replaced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "device_id")
		require.NoError(t, os.WriteFile(path, []byte("not-a-uuid"), 0o600))

		id := LoadOrCreateDeviceID(path, logger.Nop())
		assert.NotEqual(t, uuid.Nil, id)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, id.String(), strings.TrimSpace(string(data)))
	})

	t.Run("unwritable location still returns an id", func(t *testing.T) {
		// родитель - обычный файл, каталог создать нельзя
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))
		path := filepath.Join(blocker, "device_id")

		first := LoadOrCreateDeviceID(path, logger.Nop())
		second := LoadOrCreateDeviceID(path, logger.Nop())
		assert.NotEqual(t, uuid.Nil, first)
		assert.NotEqual(t, first, second, "nothing persisted, so each start mints anew")
	})
}
