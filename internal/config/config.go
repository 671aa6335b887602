// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings shared by both binaries.
	App App `envPrefix:"APP_"`

	// Adapter holds the client's view of the remote storefront API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds listen address and timeout settings for the backend.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds session token settings for the backend.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the client appends its JSON log. Empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the client's HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the storefront API
	// (e.g. "http://localhost:3000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background refresh job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Server holds network and timeout settings for the backend.
type Server struct {
	// HTTPAddress is the TCP address the backend listens on, in "host:port"
	// format (e.g. "localhost:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds settings for the backend's session tokens and the single
// development account it signs in.
type Auth struct {
	// TokenSignKey is the HMAC key used to sign session JWTs.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session stays valid (e.g. "24h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DevUserName is the display name of the development account.
	// Env: AUTH_DEV_USER_NAME
	DevUserName string `env:"DEV_USER_NAME"`

	// DevUserEmail is the email of the development account.
	// Env: AUTH_DEV_USER_EMAIL
	DevUserEmail string `env:"DEV_USER_EMAIL"`
}

// defaults returns the built-in baseline every other source is merged over.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
		Auth: Auth{
			TokenIssuer:   "storefront",
			TokenDuration: 24 * time.Hour,
			DevUserName:   "Dev User",
			DevUserEmail:  "dev@example.com",
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
//
// Returns the merged *StructuredConfig, the positional arguments left after
// flag parsing, or an error if any source fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
