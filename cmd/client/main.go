// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-keeper/internal/cli"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := cli.Execute(ctx, info, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
