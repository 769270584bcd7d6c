// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the taskkeeper client and the reference sync server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (TOML, or JSON when the path ends in ".json")
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig]. Both take
// the pflag.FlagSet the cobra command registered its flags on, so only flags
// the user actually set take part in the merge.
package config
