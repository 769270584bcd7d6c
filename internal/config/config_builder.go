// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// configBuilder collects config sources and merges them in priority order:
// defaults, file, env, flags. Each with* step records its error and lets the
// chain continue; build reports everything at once.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig

	// filePath is the config file that was actually read, if any.
	filePath string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range []*StructuredConfig{b.defaults, b.file, b.env, b.flags} {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.ConfigFilePath = b.filePath

	return config, nil
}

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	b.defaults = defaults
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	flagsCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.flags = flagsCfg
	return b
}

// withFile reads the config file named by flags, then env. When neither names
// one, fallback is tried and silently skipped if it does not exist.
func (b *configBuilder) withFile(fallback string) *configBuilder {
	if b.err != nil {
		return b
	}

	path, explicit := b.configPath()
	if !explicit {
		path = fallback
		if path == "" {
			return b
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return b
		}
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	b.filePath = path
	return b
}

func (b *configBuilder) configPath() (string, bool) {
	for _, cfg := range []*StructuredConfig{b.flags, b.env} {
		if cfg != nil && cfg.ConfigFilePath != "" {
			return cfg.ConfigFilePath, true
		}
	}
	return "", false
}

// ResolveConfigPath returns the config file the client reads: the --config
// flag, then the CONFIG env var, then [DefaultConfigPath]. Unlike
// [GetClientConfig] it does not require the file to exist.
func ResolveConfigPath(fs *pflag.FlagSet) (string, error) {
	b := newConfigBuilder().withEnv().withFlags(fs)
	if b.err != nil {
		return "", b.err
	}
	if path, ok := b.configPath(); ok {
		return path, nil
	}
	return DefaultConfigPath(), nil
}
