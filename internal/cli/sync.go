// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

type syncOptions struct {
	status bool
	force  bool
	watch  bool
}

func (r *root) newSyncCommand() *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize with the sync server",
		Long: `Exchange local changes with the sync server once and apply what the
server sent back. The exit code is non-zero when the sync failed.

--status prints the sync configuration and the last sync time without
contacting the server. --watch keeps syncing in the foreground until
interrupted, the way the interactive UI does in the background.`,
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			switch {
			case opts.status:
				return runSyncStatus(cmd, app)
			case opts.watch:
				return runSyncWatch(cmd, app)
			default:
				return runSyncOnce(cmd, app, opts.force)
			}
		}),
	}

	f := cmd.Flags()
	f.BoolVar(&opts.status, "status", false, "show sync status instead of syncing")
	f.BoolVar(&opts.force, "force", false, "full sync, ignoring the last sync time")
	f.BoolVarP(&opts.watch, "watch", "w", false, "keep syncing until interrupted")
	cmd.MarkFlagsMutuallyExclusive("status", "force")
	cmd.MarkFlagsMutuallyExclusive("status", "watch")
	cmd.MarkFlagsMutuallyExclusive("force", "watch")

	return cmd
}

func runSyncOnce(cmd *cobra.Command, app *client.App, force bool) error {
	out := cmd.OutOrStdout()
	svc := app.Services().SyncService

	if err := svc.CheckConfig(); err != nil {
		printConfigHint(out, err, app.Config().FilePath)
		return err
	}

	if force {
		printProgress(out, "Force syncing (ignoring last sync)...")
	} else {
		printProgress(out, "Syncing...")
	}

	report := svc.SyncNow(cmd.Context(), models.TriggerManual, force)
	if !report.OK() {
		return report.Err
	}

	printInfo(out, fmt.Sprintf("  Uploaded %s", plural(report.Uploaded, "change")))
	printInfo(out, fmt.Sprintf("  Received %s from server", plural(report.Received, "change")))
	if n := len(report.Conflicts); n > 0 {
		printWarning(out, fmt.Sprintf("%s (server won)", plural(n, "conflict")))
	}
	if report.Failed > 0 {
		printWarning(out, fmt.Sprintf("%s could not be applied, see the log", plural(report.Failed, "change")))
	}
	printSuccess(out, fmt.Sprintf("Sync complete! Applied %s.", plural(report.Applied, "change")))
	return nil
}

func runSyncStatus(cmd *cobra.Command, app *client.App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	svc := app.Services().SyncService
	cfg := svc.Config()

	last, err := svc.LastSync(ctx)
	if err != nil {
		return err
	}
	pending, err := svc.PendingChanges(ctx)
	if err != nil {
		return err
	}

	printSection(out, "Sync status")
	printLabelValue(out, "Enabled", strconv.FormatBool(cfg.Enabled))
	printLabelValue(out, "Server", orNotSet(cfg.Server))
	printLabelValue(out, "Token", describeToken(cfg.Token, app.Clock().Now()))
	printLabelValue(out, "Interval", describeInterval(cfg))
	printLabelValue(out, "Last sync", formatTime(last))
	printLabelValue(out, "Pending changes", strconv.Itoa(pending))
	printLabelValue(out, "Device id", app.DeviceID().String())

	if err := svc.CheckConfig(); err != nil {
		_, _ = fmt.Fprintln(out)
		printConfigHint(out, err, app.Config().FilePath)
	}
	return nil
}

func runSyncWatch(cmd *cobra.Command, app *client.App) error {
	out := cmd.OutOrStdout()

	if err := app.Services().SyncService.CheckConfig(); err != nil {
		printConfigHint(out, err, app.Config().FilePath)
		return err
	}

	printProgress(out, "Watching for changes, press Ctrl+C to stop")
	return app.RunSyncWatch(cmd.Context(), func(r models.SyncReport) {
		printReport(out, r, app.Clock().Now())
	})
}

// printReport writes one line per background sync. Rounds that moved nothing
// are skipped unless they were the first one.
func printReport(w io.Writer, r models.SyncReport, now time.Time) {
	stamp := dimColor.Sprint(now.Local().Format(time.TimeOnly))

	if !r.OK() {
		_, _ = errorColor.Fprintf(w, "✗ %s sync failed: %s\n", stamp, service.SyncErrorMessage(r.Err))
		return
	}
	if r.Uploaded == 0 && r.Received == 0 && r.Trigger != models.TriggerBootstrap {
		return
	}

	msg := fmt.Sprintf("%s %s sync: %d up, %d down", stamp, r.Trigger, r.Uploaded, r.Received)
	if n := len(r.Conflicts); n > 0 {
		msg += fmt.Sprintf(", %s", plural(n, "conflict"))
	}
	if r.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", r.Failed)
	}
	printSuccess(w, msg)
}

func printConfigHint(w io.Writer, err error, configPath string) {
	switch {
	case errors.Is(err, adapter.ErrSyncDisabled):
		printWarning(w, "Sync is disabled in config.")
	case errors.Is(err, adapter.ErrSyncNotConfigured):
		printWarning(w, "Sync is enabled but the server and/or token are missing.")
	default:
		return
	}

	printInfo(w, fmt.Sprintf("\nTo enable sync, add to %s:\n", configPath))
	printInfo(w, "  [sync]")
	printInfo(w, "  enabled = true")
	printInfo(w, `  server = "http://your-server:8080"`)
	printInfo(w, `  token = "your-token"`)
	printInfo(w, "")
}

func describeToken(token string, now time.Time) string {
	if token == "" {
		return "not set"
	}

	info, err := adapter.InspectToken(token)
	if err != nil || !info.IsJWT {
		return "set"
	}

	desc := "JWT"
	if info.Subject != "" {
		desc += " for " + info.Subject
	}
	if info.ExpiresAt != nil {
		desc += ", expires " + formatTime(info.ExpiresAt)
		if info.Expired(now) {
			desc += " " + errorColor.Sprint("(expired)")
		}
	}
	return desc
}

func describeInterval(cfg config.ClientSync) string {
	if cfg.Interval() <= 0 {
		return "periodic sync disabled"
	}
	return cfg.Interval().String()
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}
