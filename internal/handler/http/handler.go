package http

import (
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	version  string

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler creates a Handler. Request metrics are registered on registry,
// which is also what /metrics serves; a nil registry gets a private one.
func NewHandler(services *service.Services, version string, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		registry: registry,
		metrics:  newHTTPMetrics(registry),
		logger:   logger,
	}
}
