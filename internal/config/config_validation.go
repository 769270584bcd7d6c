// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the client configuration. A missing server or token is not
// an error here: sync then reports "not configured" at runtime.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.Server != "" {
		u, err := url.Parse(cfg.Sync.Server)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: server must be an http(s) URL, got %q", ErrInvalidSyncConfigs, cfg.Sync.Server)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Token == "" && cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: either a token or a token sign key is required", ErrInvalidServerConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
