// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const logRole = "taskkeeper"

type appRunFunc func(cmd *cobra.Command, args []string, app *client.App) error

// withApp opens the client app for the duration of one command.
func (r *root) withApp(run appRunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := r.openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return run(cmd, args, app)
	}
}

func (r *root) openApp(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger(logRole, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Level:      cfg.Log.Level,
	})
	log.Debug().Str("command", cmd.CommandPath()).Msg("command started")

	return client.NewApp(cmd.Context(), cfg, log, r.appOpts...)
}

// resolveTask finds a task by full id, id prefix or, failing that, the first
// task whose title contains ref.
func resolveTask(ctx context.Context, tasks service.ClientTaskService, ref string) (models.Task, error) {
	task, err := tasks.FindTask(ctx, ref)
	if err == nil || !errors.Is(err, store.ErrTaskNotFound) {
		return task, err
	}

	matches, err := tasks.ListTasks(ctx, models.TaskFilter{IncludeCompleted: true, Search: ref})
	if err != nil {
		return models.Task{}, err
	}
	if len(matches) == 0 {
		return models.Task{}, fmt.Errorf("%w: %s", store.ErrTaskNotFound, ref)
	}
	return matches[0], nil
}

func listNames(lists []models.List) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(lists))
	for _, l := range lists {
		names[l.ID] = l.Name
	}
	return names
}

func tagNames(tags []models.Tag) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}
	return names
}

// humanizeError is the text printed after ✗ when a command fails.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrSyncConfig),
		errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrUnexpectedStatus),
		errors.Is(err, adapter.ErrMalformedResponse),
		errors.Is(err, service.ErrMergeGuard):
		return "Sync failed: " + service.SyncErrorMessage(err)
	case errors.Is(err, store.ErrAmbiguousID):
		return err.Error() + " (type more characters of the id)"
	case errors.Is(err, store.ErrCannotDeleteInbox):
		return "The inbox cannot be deleted."
	}
	return err.Error()
}
