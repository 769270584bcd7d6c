// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ServerConfig is the configuration of the reference sync server.
type ServerConfig struct {
	HTTPAddress    string
	Token          string
	TokenSignKey   string
	RequestTimeout time.Duration
	Version        string
}

// GetServerConfig builds and validates the reference server configuration.
// fs is the flag set [RegisterServerFlags] populated; it may be nil.
func GetServerConfig(fs *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(serverDefaults()).
		withEnv().
		withFlags(fs).
		withFile("").
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		Token:          cfg.Server.Token,
		TokenSignKey:   cfg.Server.TokenSignKey,
		RequestTimeout: cfg.Server.RequestTimeout.Std(),
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
