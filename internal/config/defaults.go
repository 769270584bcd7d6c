// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "taskkeeper"

	DefaultConfigFileName   = "config.toml"
	DefaultDBFileName       = "tasks.db"
	DefaultDeviceIDFileName = "device_id"
	DefaultLogFileName      = "taskkeeper.log"

	DefaultSyncIntervalSecs uint64 = 300
	DefaultRequestTimeout          = 30 * time.Second
	DefaultLogLevel                = "info"
	DefaultLogMaxSizeMB            = 10
	DefaultLogMaxBackups           = 3

	DefaultServerAddress = "localhost:8080"
)

// DefaultDataDir returns <user config dir>/taskkeeper, or ./.taskkeeper when
// the user config dir cannot be determined.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "." + appDirName
	}
	return filepath.Join(dir, appDirName)
}

// DefaultConfigPath returns the config file looked up when none is given.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), DefaultConfigFileName)
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DataDir: DefaultDataDir(),
		},
		Sync: Sync{
			RequestTimeout: Duration(DefaultRequestTimeout),
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
	}
}

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: Duration(DefaultRequestTimeout),
		},
	}
}
