// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-link-txt service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the remote ad platform API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Metrics holds settings of the Prometheus exposition endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Port is the bare listening port kept for compatibility with the
	// original deployment. Used only when Server.HTTPAddress is empty.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal level of emitted log entries
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3001" or ":3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request, including the whole provisioning chain.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the outbound platform API client.
type Adapter struct {
	// BaseURL is the root URL of the platform REST API
	// (e.g. "https://api.system.netsalesmedia.pl").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Metrics holds settings of the Prometheus endpoint.
type Metrics struct {
	// Path is the route the metrics are served on.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
