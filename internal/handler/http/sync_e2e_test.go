// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	handler "github.com/MKhiriev/go-task-keeper/internal/handler/http"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const e2eToken = "e2e-secret"

// device is one client installation: its own database, transport and device id.
type device struct {
	services *service.ClientServices
	storages *store.ClientStorages
}

func e2eContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func startServer(t *testing.T, clk clock.Clock) *httptest.Server {
	t.Helper()
	cfg := &config.ServerConfig{HTTPAddress: "127.0.0.1:0", Token: e2eToken, Version: "e2e"}

	services, err := service.NewServerServices(cfg, clk, logger.Nop())
	require.NoError(t, err)

	ts := httptest.NewServer(handler.NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(ts.Close)
	return ts
}

func newDevice(t *testing.T, serverURL string, clk clock.Clock) *device {
	t.Helper()
	storages, err := store.NewClientStorages(e2eContext(),
		config.ClientStorage{DB: config.ClientDB{Path: filepath.Join(t.TempDir(), "tasks.db")}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	syncCfg := config.ClientSync{Enabled: true, Server: serverURL, Token: e2eToken, RequestTimeout: 5 * time.Second}
	transport := adapter.NewHTTPSyncTransport(syncCfg, uuid.New(), logger.Nop())

	return &device{
		services: service.NewClientServices(storages, transport, syncCfg, clk, logger.Nop()),
		storages: storages,
	}
}

func (d *device) sync(t *testing.T) models.SyncReport {
	t.Helper()
	report := d.services.SyncService.SyncNow(e2eContext(), models.TriggerManual, false)
	require.NoError(t, report.Err)
	require.Zero(t, report.Failed)
	return report
}

func TestEndToEnd_TwoDevicesConverge(t *testing.T) {
	ctx := e2eContext()
	clk := clock.NewFakeClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	ts := startServer(t, clk)

	laptop := newDevice(t, ts.URL, clk)
	phone := newDevice(t, ts.URL, clk)

	// ноутбук создаёт список, тег и задачу
	work, err := laptop.services.TaskService.CreateList(ctx, "Work")
	require.NoError(t, err)
	urgent, err := laptop.services.TaskService.CreateTag(ctx, "urgent")
	require.NoError(t, err)
	task, err := laptop.services.TaskService.CreateTask(ctx, models.Task{
		Title:  "write report",
		ListID: work.ID,
		TagIDs: []uuid.UUID{urgent.ID},
	})
	require.NoError(t, err)

	clk.Advance(time.Minute)
	first := laptop.sync(t)
	assert.Positive(t, first.Uploaded)

	clk.Advance(time.Minute)
	phone.sync(t)

	got, err := phone.services.TaskService.FindTask(ctx, task.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.Equal(t, work.ID, got.ListID)
	assert.ElementsMatch(t, []uuid.UUID{urgent.ID}, got.TagIDs)

	_, err = phone.services.TaskService.FindList(ctx, "Work")
	require.NoError(t, err)

	// телефон завершает задачу, ноутбук получает изменение
	clk.Advance(time.Minute)
	_, err = phone.services.TaskService.ToggleTask(ctx, task.ID)
	require.NoError(t, err)

	clk.Advance(time.Minute)
	phone.sync(t)
	clk.Advance(time.Minute)
	laptop.sync(t)

	got, err = laptop.services.TaskService.FindTask(ctx, task.ID.String())
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)

	// a second exchange with nothing new uploads nothing
	clk.Advance(time.Minute)
	idle := laptop.sync(t)
	assert.Zero(t, idle.Uploaded)
	assert.Zero(t, idle.Received)
}

func TestEndToEnd_DeleteAfterSyncPropagates(t *testing.T) {
	ctx := e2eContext()
	clk := clock.NewFakeClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	ts := startServer(t, clk)

	laptop := newDevice(t, ts.URL, clk)
	phone := newDevice(t, ts.URL, clk)

	task, err := laptop.services.TaskService.CreateTask(ctx, models.Task{Title: "buy milk"})
	require.NoError(t, err)

	clk.Advance(time.Minute)
	laptop.sync(t)
	clk.Advance(time.Minute)
	phone.sync(t)

	_, err = phone.services.TaskService.FindTask(ctx, task.ID.String())
	require.NoError(t, err)

	clk.Advance(time.Minute)
	require.NoError(t, laptop.services.TaskService.DeleteTask(ctx, task.ID))

	clk.Advance(time.Minute)
	deleted := laptop.sync(t)
	assert.Equal(t, 1, deleted.Uploaded, "only the tombstone goes up")

	clk.Advance(time.Minute)
	received := phone.sync(t)
	assert.Equal(t, 1, received.Received)

	_, err = phone.services.TaskService.FindTask(ctx, task.ID.String())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
