// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the backend's view of [StructuredConfig].
type ServerConfig struct {
	App    App
	Server Server
	Auth   Auth
}

// GetServerConfig builds and validates the backend configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Auth:   cfg.Auth,
	}

	return serverCfg, serverCfg.validate()
}
