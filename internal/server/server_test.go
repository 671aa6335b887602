// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServerConfig() config.ServerConfig {
	return config.ServerConfig{
		App:    config.App{Version: "test"},
		Server: config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second},
		Auth: config.Auth{
			TokenSignKey:  "server-test-key",
			TokenIssuer:   "storefront",
			TokenDuration: time.Hour,
		},
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := newTestServerConfig()
	services := service.NewServices(cfg.Auth, logger.Nop())
	handlers, err := handler.NewHandlers(services, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var addr string
	select {
	case addr = <-srv.(*server).ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "test", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	cfg := newTestServerConfig()
	handlers, err := handler.NewHandlers(service.NewServices(cfg.Auth, logger.Nop()), cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
