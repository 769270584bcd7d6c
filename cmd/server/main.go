// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/server"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoSignKey = errors.New("token signing needs --token-sign-key or SERVER_TOKEN_SIGN_KEY")

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCommand(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand(info models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taskkeeper-server",
		Version: info.BuildVersion(),
		Short:   "Reference sync server for taskkeeper clients",
		Long: `taskkeeper-server keeps an in-memory copy of the synced tasks and serves
POST /api/v1/sync and GET /api/version. It is meant for development and
end-to-end tests; the data is lost on restart.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, info)
		},
	}
	config.RegisterServerFlags(cmd.PersistentFlags())

	var (
		subject string
		ttl     time.Duration
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a JWT bearer token signed with the server key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetServerConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.TokenSignKey == "" {
				return errNoSignKey
			}

			token, err := utils.GenerateJWTToken(utils.TokenIssuer, subject, ttl, cfg.TokenSignKey)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	tokenCmd.Flags().StringVar(&subject, "subject", "", "token subject, usually the user name")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")

	cmd.AddCommand(
		tokenCmd,
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprint(cmd.OutOrStdout(), info.String())
			},
		},
	)

	return cmd
}

func serve(cmd *cobra.Command, info models.AppBuildInfo) error {
	fmt.Fprint(cmd.OutOrStdout(), info.String())

	log := logger.NewLogger("taskkeeper-server")
	cfg, err := config.GetServerConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = info.BuildVersion()
	}

	log.Debug().Str("address", cfg.HTTPAddress).Bool("jwt", cfg.TokenSignKey != "").Msg("received configs")

	services, err := service.NewServerServices(cfg, clock.RealClock{}, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
