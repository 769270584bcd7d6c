// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/client"
)

func (r *root) newTagsCommand() *cobra.Command {
	listAll := r.withApp(runTagsLs)

	cmd := &cobra.Command{
		Use:     "tags",
		Short:   "Manage tags",
		Long:    "Manage tags. Without a subcommand the tags are printed.",
		GroupID: groupOrganize,
		Args:    cobra.NoArgs,
		RunE:    listAll,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "ls",
			Aliases: []string{"list"},
			Short:   "Print all tags",
			Args:    cobra.NoArgs,
			RunE:    listAll,
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a tag",
			Args:  cobra.ExactArgs(1),
			RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
				tag, err := app.Services().TaskService.CreateTag(cmd.Context(), strings.TrimPrefix(args[0], "#"))
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created tag: %s (%s)", tag.Name, tag.Color))
				return nil
			}),
		},
		&cobra.Command{
			Use:     "rm <name>",
			Aliases: []string{"delete"},
			Short:   "Delete a tag and detach it from its tasks",
			Args:    cobra.ExactArgs(1),
			RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
				tasks := app.Services().TaskService

				tag, err := tasks.FindTag(cmd.Context(), strings.TrimPrefix(args[0], "#"))
				if err != nil {
					return err
				}
				if err := tasks.DeleteTag(cmd.Context(), tag.ID); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Deleted tag: "+tag.Name)
				return nil
			}),
		},
	)

	return cmd
}

func runTagsLs(cmd *cobra.Command, _ []string, app *client.App) error {
	out := cmd.OutOrStdout()

	tags, err := app.Services().TaskService.GetTags(cmd.Context())
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		printInfo(out, "No tags yet.")
		return nil
	}

	for _, t := range tags {
		printInfo(out, fmt.Sprintf("● %s (%s)", t.Name, t.Color))
	}
	return nil
}
