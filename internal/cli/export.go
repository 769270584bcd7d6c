// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/export"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (r *root) newExportCommand() *cobra.Command {
	var (
		format string
		output string
		list   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as JSON, todo.txt, Markdown or CSV",
		Example: `  taskkeeper export > tasks.json
  taskkeeper export --format markdown --list Work -o work.md`,
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			ctx := cmd.Context()
			tasks := app.Services().TaskService

			exportFormat, err := models.ParseExportFormat(format)
			if err != nil {
				return err
			}

			filter := models.TaskFilter{IncludeCompleted: true}
			if list != "" {
				l, err := tasks.FindList(ctx, list)
				if err != nil {
					return err
				}
				filter.ListID = &l.ID
			}

			snap, err := export.Collect(ctx, tasks, filter)
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), exportFormat, snap, app.Clock().Now())
			}

			if filepath.Ext(output) == "" {
				output += "." + exportFormat.Extension()
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("error creating export file: %w", err)
			}
			if err := export.Write(f, exportFormat, snap, app.Clock().Now()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("error writing export file: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported %s to %s", plural(len(snap.Tasks), "task"), output))
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", string(models.ExportJSON), "format (json, todotxt, markdown, csv)")
	f.StringVarP(&output, "output", "o", "", "output file, the format extension is added when missing (default: stdout)")
	f.StringVarP(&list, "list", "l", "", "only tasks of this list")

	return cmd
}
