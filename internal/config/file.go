// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/BurntSushi/toml"
)

// parseFile reads a config file. The format is chosen by extension: ".json"
// is JSON, ".toml" or no extension is TOML.
func parseFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path)
	case ".toml", "":
		return parseTOML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}
}

func parseTOML(path string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("error decoding toml configs: unknown key %q", undecoded[0].String())
	}

	cfg.ConfigFilePath = ""
	return cfg, nil
}

func parseJSON(path string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	cfg := new(StructuredConfig)
	if err := json.NewDecoder(jsonFile).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg.ConfigFilePath = ""
	return cfg, nil
}

// DefaultFileConfig is the content written by `taskkeeper config init`.
func DefaultFileConfig() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			Enabled:        pointer.ToBool(false),
			IntervalSecs:   pointer.ToUint64(DefaultSyncIntervalSecs),
			RequestTimeout: Duration(DefaultRequestTimeout),
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
		App: App{
			ShowCompleted: pointer.ToBool(false),
		},
	}
}

// WriteDefaultFile writes [DefaultFileConfig] as TOML to path, creating
// parent directories. An existing file is only replaced when overwrite is set.
func WriteDefaultFile(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(DefaultFileConfig()); err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}

	return f.Close()
}
