// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the cobra command surface of the taskkeeper client. Without
// a subcommand it starts the TUI; the subcommands run one-shot task, list,
// tag, export, sync and config operations against the same local database.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	groupTasks    = "tasks"
	groupOrganize = "organize"
	groupData     = "data"
	groupTooling  = "tooling"
)

// root carries what every command needs to open the client app.
type root struct {
	info    models.AppBuildInfo
	appOpts []client.Option
}

// NewRootCommand builds the taskkeeper command tree. appOpts are passed to
// every [client.NewApp] call the commands make.
func NewRootCommand(info models.AppBuildInfo, appOpts ...client.Option) *cobra.Command {
	r := &root{info: info, appOpts: appOpts}

	cmd := &cobra.Command{
		Use:     "taskkeeper",
		Version: info.BuildVersion(),
		Short:   "Keyboard-driven task manager with optional sync",
		Long: `taskkeeper keeps tasks, lists and tags in a local SQLite database.

Run it without arguments for the interactive UI, or use the subcommands from
scripts. When sync is configured, changes are exchanged with a sync server in
the background and on demand with "taskkeeper sync".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: r.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.RunTUI(cmd.Context(), r.info)
		}),
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)

	config.RegisterClientFlags(cmd.PersistentFlags())

	cmd.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Tasks:"},
		&cobra.Group{ID: groupOrganize, Title: "Lists & Tags:"},
		&cobra.Group{ID: groupData, Title: "Sync & Data:"},
		&cobra.Group{ID: groupTooling, Title: "CLI & Tooling:"},
	)

	cmd.AddCommand(
		r.newAddCommand(),
		r.newListCommand(),
		r.newDoneCommand(),
		r.newUndoCommand(),
		r.newDeleteCommand(),
		r.newListsCommand(),
		r.newTagsCommand(),
		r.newExportCommand(),
		r.newSyncCommand(),
		r.newConfigCommand(),
		r.newVersionCommand(),
	)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: groupTooling,
		RunE: func(c *cobra.Command, args []string) error {
			target, _, err := c.Root().Find(args)
			if err != nil || target == nil {
				target = c.Root()
			}
			return target.Help()
		},
	}
	cmd.SetHelpCommand(helpCmd)

	return cmd
}

// Execute runs the command tree with ctx and prints a failure to stderr. The
// returned error only tells the caller to exit non-zero.
func Execute(ctx context.Context, info models.AppBuildInfo, args []string) error {
	cmd := NewRootCommand(info)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		printError(cmd.ErrOrStderr(), humanizeError(err))
	}
	return err
}

// customHelpFunc prints the help page with colored section titles and the
// commands grouped the way the root command declares them.
func customHelpFunc(cmd *cobra.Command, _ []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n", cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "  %s [command]\n", cmd.CommandPath())
	}
	help.WriteString("\n")

	if len(cmd.Aliases) > 0 {
		help.WriteString(sectionTitleColor.Sprint("Aliases:"))
		help.WriteString("\n")
		fmt.Fprintf(&help, "  %s\n\n", strings.Join(append([]string{cmd.Name()}, cmd.Aliases...), ", "))
	}

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")
		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && c.IsAvailableCommand() {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID != "" || !c.IsAvailableCommand() {
			continue
		}
		if !hasUngrouped {
			help.WriteString(sectionTitleColor.Sprint("Commands:"))
			help.WriteString("\n")
			hasUngrouped = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString("\n")
	}
	if cmd.HasAvailableInheritedFlags() {
		help.WriteString(sectionTitleColor.Sprint("Global Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}
