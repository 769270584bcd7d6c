// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, the config file, environment variables and flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - toml/json: key names inside the config file.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_" toml:"app,omitempty" json:"app,omitempty"`
	Storage Storage `envPrefix:"STORAGE_" toml:"storage,omitempty" json:"storage,omitempty"`
	Sync    Sync    `envPrefix:"SYNC_" toml:"sync,omitempty" json:"sync,omitempty"`
	Log     Log     `envPrefix:"LOG_" toml:"log,omitempty" json:"log,omitempty"`
	Server  Server  `envPrefix:"SERVER_" toml:"server,omitempty" json:"server,omitempty"`

	// ConfigFilePath is the optional path to the config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG" toml:"-" json:"-"`
}

// App holds client application settings.
type App struct {
	// DataDir is the directory holding the database, device id and log file
	// unless those are set explicitly.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR" toml:"data_dir,omitempty" json:"data_dir,omitempty"`

	// DeviceIDFile stores the installation's device id.
	// Env: APP_DEVICE_ID_FILE
	DeviceIDFile string `env:"DEVICE_ID_FILE" toml:"device_id_file,omitempty" json:"device_id_file,omitempty"`

	// Version of the running binary. Set by the linker, not by users.
	// Env: APP_VERSION
	Version string `env:"VERSION" toml:"-" json:"-"`

	// ShowCompleted makes the TUI and `list` include completed tasks.
	// Env: APP_SHOW_COMPLETED
	ShowCompleted *bool `env:"SHOW_COMPLETED" toml:"show_completed,omitempty" json:"show_completed,omitempty"`

	// DefaultList is the name of the list new tasks go to when no list is
	// given. Empty means the inbox.
	// Env: APP_DEFAULT_LIST
	DefaultList string `env:"DEFAULT_LIST" toml:"default_list,omitempty" json:"default_list,omitempty"`
}

// Storage groups the configuration of the local database.
type Storage struct {
	DB DB `envPrefix:"DB_" toml:"db,omitempty" json:"db,omitempty"`
}

// DB holds the SQLite database location.
type DB struct {
	// Path is the SQLite file path.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH" toml:"path,omitempty" json:"path,omitempty"`
}

// Sync holds the remote synchronization settings.
type Sync struct {
	// Env: SYNC_ENABLED
	Enabled *bool `env:"ENABLED" toml:"enabled,omitempty" json:"enabled,omitempty"`

	// Server is the base URL of the sync server, e.g. "https://tasks.example.com".
	// Env: SYNC_SERVER
	Server string `env:"SERVER" toml:"server,omitempty" json:"server,omitempty"`

	// Token is the bearer token sent with every sync request.
	// Env: SYNC_TOKEN
	Token string `env:"TOKEN" toml:"token,omitempty" json:"token,omitempty"`

	// IntervalSecs is the periodic sync interval. Zero disables periodic
	// syncing; nil means the default.
	// Env: SYNC_INTERVAL_SECS
	IntervalSecs *uint64 `env:"INTERVAL_SECS" toml:"interval_secs,omitempty" json:"interval_secs,omitempty"`

	// RequestTimeout bounds a single sync round-trip (e.g. "30s").
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" toml:"request_timeout,omitempty" json:"request_timeout,omitempty"`
}

// Log holds client log file settings.
type Log struct {
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" toml:"level,omitempty" json:"level,omitempty"`
	// Env: LOG_FILE
	File string `env:"FILE" toml:"file,omitempty" json:"file,omitempty"`
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB" toml:"max_size_mb,omitempty" json:"max_size_mb,omitempty"`
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS" toml:"max_backups,omitempty" json:"max_backups,omitempty"`
}

// Server holds the settings of the reference sync server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" toml:"address,omitempty" json:"address,omitempty"`

	// Token is a static bearer token accepted by the server.
	// Env: SERVER_TOKEN
	Token string `env:"TOKEN" toml:"token,omitempty" json:"token,omitempty"`

	// TokenSignKey is the HS256 key used to verify JWT bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" toml:"token_sign_key,omitempty" json:"token_sign_key,omitempty"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" toml:"request_timeout,omitempty" json:"request_timeout,omitempty"`
}

// Duration is a time.Duration that reads and writes strings like "1h" or
// "30s" in config files and environment variables. JSON numbers are accepted
// as nanoseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	*d = Duration(tmp)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalJSON accepts both duration strings and integer nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
