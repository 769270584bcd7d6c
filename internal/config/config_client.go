// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	DataDir       string
	DeviceIDFile  string
	Version       string
	ShowCompleted bool
	DefaultList   string
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// Path is the SQLite database file.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSync is the sync configuration snapshot consumed by the transport and
// the orchestrator.
type ClientSync struct {
	Enabled        bool
	Server         string
	Token          string
	IntervalSecs   uint64
	RequestTimeout time.Duration
}

// Configured reports whether sync is enabled and has both a server and a token.
func (s ClientSync) Configured() bool {
	return s.Enabled && s.Server != "" && s.Token != ""
}

// Interval returns the periodic sync interval; zero means periodic syncing is
// disabled.
func (s ClientSync) Interval() time.Duration {
	return time.Duration(s.IntervalSecs) * time.Second
}

// ClientLog holds the client log file settings.
type ClientLog struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Sync    ClientSync
	Log     ClientLog

	// FilePath is the config file that was read, or the default location
	// when none was.
	FilePath string
}

// GetClientConfig builds and validates the client configuration. fs is the
// flag set [RegisterClientFlags] populated; it may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(clientDefaults()).
		withEnv().
		withFlags(fs).
		withFile(DefaultConfigPath()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dataDir := cfg.App.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DataDir:      dataDir,
			DeviceIDFile: orDefault(cfg.App.DeviceIDFile, filepath.Join(dataDir, DefaultDeviceIDFileName)),
			Version:      cfg.App.Version,
			DefaultList:  cfg.App.DefaultList,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: orDefault(cfg.Storage.DB.Path, filepath.Join(dataDir, DefaultDBFileName)),
			},
		},
		Sync: ClientSync{
			Server:         cfg.Sync.Server,
			Token:          cfg.Sync.Token,
			IntervalSecs:   DefaultSyncIntervalSecs,
			RequestTimeout: cfg.Sync.RequestTimeout.Std(),
		},
		Log: ClientLog{
			Level:      cfg.Log.Level,
			File:       orDefault(cfg.Log.File, filepath.Join(dataDir, DefaultLogFileName)),
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		},
		FilePath: orDefault(cfg.ConfigFilePath, DefaultConfigPath()),
	}

	if cfg.App.ShowCompleted != nil {
		clientCfg.App.ShowCompleted = *cfg.App.ShowCompleted
	}
	if cfg.Sync.Enabled != nil {
		clientCfg.Sync.Enabled = *cfg.Sync.Enabled
	}
	if cfg.Sync.IntervalSecs != nil {
		clientCfg.Sync.IntervalSecs = *cfg.Sync.IntervalSecs
	}
	if clientCfg.Sync.RequestTimeout <= 0 {
		clientCfg.Sync.RequestTimeout = DefaultRequestTimeout
	}

	return clientCfg
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
