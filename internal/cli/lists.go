// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/client"
)

func (r *root) newListsCommand() *cobra.Command {
	listAll := r.withApp(runListsLs)

	cmd := &cobra.Command{
		Use:     "lists",
		Short:   "Manage lists",
		Long:    "Manage lists. Without a subcommand the lists are printed.",
		GroupID: groupOrganize,
		Args:    cobra.NoArgs,
		RunE:    listAll,
	}

	var force bool
	rmCmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a list and move its tasks to the inbox",
		Args:    cobra.ExactArgs(1),
		RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			tasks := app.Services().TaskService
			out := cmd.OutOrStdout()

			list, err := tasks.FindList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !force && !list.IsInbox && !confirm(cmd, fmt.Sprintf("Delete list %q?", list.Name)) {
				printInfo(out, "Cancelled.")
				return nil
			}

			moved, err := tasks.DeleteList(cmd.Context(), list.ID)
			if err != nil {
				return err
			}
			printSuccess(out, fmt.Sprintf("Deleted list: %s (%s moved to the inbox)", list.Name, plural(int(moved), "task")))
			return nil
		}),
	}
	rmCmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	cmd.AddCommand(
		&cobra.Command{
			Use:     "ls",
			Aliases: []string{"list"},
			Short:   "Print all lists with their open task counts",
			Args:    cobra.NoArgs,
			RunE:    listAll,
		},
		&cobra.Command{
			Use:   "add <name>...",
			Short: "Create a list",
			Args:  cobra.MinimumNArgs(1),
			RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
				list, err := app.Services().TaskService.CreateList(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created list: %s %s", list.Icon, list.Name))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "rename <name> <new name>",
			Short: "Rename a list",
			Args:  cobra.ExactArgs(2),
			RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
				tasks := app.Services().TaskService

				list, err := tasks.FindList(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				renamed, err := tasks.RenameList(cmd.Context(), list.ID, args[1])
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Renamed list: %s → %s", list.Name, renamed.Name))
				return nil
			}),
		},
		rmCmd,
	)

	return cmd
}

func runListsLs(cmd *cobra.Command, _ []string, app *client.App) error {
	tasks := app.Services().TaskService
	out := cmd.OutOrStdout()

	lists, err := tasks.GetLists(cmd.Context())
	if err != nil {
		return err
	}
	counts, err := tasks.CountOpenTasks(cmd.Context())
	if err != nil {
		return err
	}

	for _, l := range lists {
		line := fmt.Sprintf("%s %s (%s)", l.Icon, l.Name, plural(counts[l.ID], "task"))
		if l.IsInbox {
			line += dimColor.Sprint(" (default)")
		}
		printInfo(out, line)
	}
	return nil
}
