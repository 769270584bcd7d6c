// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode reads the single JSON entry written to buf.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

// ── NewLogger ──

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("taskkeeper-server")
	l.Logger = l.Output(&buf)

	l.Info().Str("address", ":8080").Msg("listening")

	entry := decode(t, &buf)
	assert.Equal(t, "taskkeeper-server", entry["role"])
	assert.Equal(t, ":8080", entry["address"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape", "caller is the function name")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_DebugIsFilteredByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("taskkeeper-server")
	l.Logger = l.Output(&buf)

	l.Debug().Msg("noise")
	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel(), "per-logger levels decide")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("discarded")
	assert.Empty(t, buf.String())
}

// ── Child loggers ──

func TestGetChildLogger_KeepsParentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "taskkeeper").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})
	child.Info().Msg("from child")

	entry := decode(t, &buf)
	assert.Equal(t, "taskkeeper", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	// родитель не получил поле ребёнка
	buf.Reset()
	parent.Info().Msg("from parent")
	assert.NotContains(t, decode(t, &buf), "trace_id")
}

// ── Context lookups ──

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("device_id", "d-1").Logger()

	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{name: "attached", ctx: zl.WithContext(context.Background()), want: true},
		{name: "missing", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			l := FromContext(tt.ctx)
			require.NotNil(t, l)

			l.Info().Msg("sync started")
			if !tt.want {
				assert.Empty(t, buf.String())
				return
			}
			assert.Equal(t, "d-1", decode(t, &buf)["device_id"])
		})
	}
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	require.NotNil(t, FromRequest(req))

	req = req.WithContext(zl.WithContext(req.Context()))
	FromRequest(req).Warn().Msg("rejected")

	entry := decode(t, &buf)
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.Equal(t, "warn", entry["level"])
}

// ── NewClientLogger ──

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	l := NewClientLogger("client", FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1, Level: "debug"})
	l.Debug().Str("k", "v").Msg("to file")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewClientLogger_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", FileOptions{Path: path, Level: "warn"})
	l.Info().Msg("dropped")

	_, err := os.Stat(path)
	// lumberjack создаёт файл только при первой записи
	assert.True(t, os.IsNotExist(err))
}

func TestNewClientLogger_EmptyPathDiscards(t *testing.T) {
	l := NewClientLogger("client", FileOptions{})
	require.NotNil(t, l)
	l.Info().Msg("nowhere")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithComponent("orchestrator").Info().Msg("x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "orchestrator", entry["component"])
}
