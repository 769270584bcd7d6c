// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/spf13/pflag"
)

// Flag names shared by the cobra commands and the config builder.
const (
	FlagConfig        = "config"
	FlagDBPath        = "db"
	FlagDataDir       = "data-dir"
	FlagSyncEnabled   = "sync"
	FlagSyncServer    = "server"
	FlagSyncToken     = "token"
	FlagSyncInterval  = "interval"
	FlagTimeout       = "timeout"
	FlagLogLevel      = "log-level"
	FlagShowCompleted = "show-completed"

	FlagAddress   = "address"
	FlagSignKey   = "token-sign-key"
	FlagAuthToken = "auth-token"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterClientFlags registers the client configuration flags on fs.
//
// Flags:
//
//	-c/--config      config file path
//	--db             SQLite database path
//	--data-dir       data directory
//	--sync           enable or disable sync
//	--server         sync server URL
//	--token          sync bearer token
//	--interval       sync interval in seconds, 0 disables periodic sync
//	--timeout        sync request timeout (e.g. "30s")
//	--log-level      log level
//	--show-completed include completed tasks
func RegisterClientFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (TOML or JSON)")
	fs.String(FlagDBPath, "", "SQLite database path")
	fs.String(FlagDataDir, "", "data directory")
	fs.Bool(FlagSyncEnabled, false, "enable sync")
	fs.String(FlagSyncServer, "", "sync server URL")
	fs.String(FlagSyncToken, "", "sync bearer token")
	fs.Uint64(FlagSyncInterval, 0, "sync interval in seconds (0 disables periodic sync)")
	fs.Duration(FlagTimeout, 0, "sync request timeout (e.g. 30s)")
	fs.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	fs.Bool(FlagShowCompleted, false, "include completed tasks")
}

// RegisterServerFlags registers the reference server flags on fs.
//
// Flags:
//
//	-c/--config        config file path
//	-a/--address       listen address host:port
//	--auth-token       static bearer token accepted from clients
//	--token-sign-key   HS256 key for JWT bearer tokens
//	--timeout          request timeout
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (TOML or JSON)")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "listen address host:port")
	fs.String(FlagAuthToken, "", "static bearer token")
	fs.String(FlagSignKey, "", "HS256 key for JWT bearer tokens")
	fs.Duration(FlagTimeout, 0, "request timeout (e.g. 30s)")
}

// parseFlags collects the flags the user actually set on fs. Unset flags stay
// zero so they do not override lower-priority sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	if fs == nil {
		return cfg, nil
	}

	var errs []error
	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	str(FlagConfig, &cfg.ConfigFilePath)
	str(FlagDBPath, &cfg.Storage.DB.Path)
	str(FlagDataDir, &cfg.App.DataDir)
	str(FlagSyncServer, &cfg.Sync.Server)
	str(FlagSyncToken, &cfg.Sync.Token)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagAddress, &cfg.Server.HTTPAddress)
	str(FlagAuthToken, &cfg.Server.Token)
	str(FlagSignKey, &cfg.Server.TokenSignKey)

	if changed(FlagSyncEnabled) {
		v, err := fs.GetBool(FlagSyncEnabled)
		errs = append(errs, err)
		cfg.Sync.Enabled = pointer.ToBool(v)
	}
	if changed(FlagShowCompleted) {
		v, err := fs.GetBool(FlagShowCompleted)
		errs = append(errs, err)
		cfg.App.ShowCompleted = pointer.ToBool(v)
	}
	if changed(FlagSyncInterval) {
		v, err := fs.GetUint64(FlagSyncInterval)
		errs = append(errs, err)
		cfg.Sync.IntervalSecs = pointer.ToUint64(v)
	}
	if changed(FlagTimeout) {
		v, err := fs.GetDuration(FlagTimeout)
		errs = append(errs, err)
		cfg.Sync.RequestTimeout = Duration(v)
		cfg.Server.RequestTimeout = Duration(v)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
