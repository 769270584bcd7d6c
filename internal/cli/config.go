// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/config"
)

func (r *root) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Long: `Print the effective configuration: defaults, then the config file, then
environment variables, then flags. The sync token is never printed.`,
		GroupID: groupTooling,
		Args:    cobra.NoArgs,
		RunE:    runConfigShow,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ResolveConfigPath(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.WriteDefaultFile(path, force); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.ResolveConfigPath(cmd.Flags())
				if err != nil {
					return err
				}
				printInfo(cmd.OutOrStdout(), path)
				return nil
			},
		},
		initCmd,
	)

	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	printSection(out, "Config file")
	printLabelValue(out, "Path", cfg.FilePath)

	printSection(out, "App")
	printLabelValue(out, "Data dir", cfg.App.DataDir)
	printLabelValue(out, "Device id file", cfg.App.DeviceIDFile)
	printLabelValue(out, "Show completed", strconv.FormatBool(cfg.App.ShowCompleted))
	printLabelValue(out, "Default list", orNotSet(cfg.App.DefaultList))

	printSection(out, "Storage")
	printLabelValue(out, "Database", cfg.Storage.DB.Path)

	printSection(out, "Sync")
	printLabelValue(out, "Enabled", strconv.FormatBool(cfg.Sync.Enabled))
	printLabelValue(out, "Server", orNotSet(cfg.Sync.Server))
	printLabelValue(out, "Token", maskSecret(cfg.Sync.Token))
	printLabelValue(out, "Interval", describeInterval(cfg.Sync))
	printLabelValue(out, "Request timeout", cfg.Sync.RequestTimeout.String())

	printSection(out, "Log")
	printLabelValue(out, "File", cfg.Log.File)
	printLabelValue(out, "Level", orNotSet(cfg.Log.Level))
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return "not set"
	}
	return "********"
}
