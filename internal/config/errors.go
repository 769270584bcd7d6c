// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates an unusable sync server URL.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates a reference server configuration
	// without listen address or without any way to authenticate clients.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

var (
	// ErrConfigFileExists is returned by [WriteDefaultFile] when the target
	// exists and overwriting was not requested.
	ErrConfigFileExists = errors.New("config file already exists")
	// ErrUnsupportedConfigFormat is returned for config files that are
	// neither TOML nor JSON.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
