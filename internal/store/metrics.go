// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opRefresh   = "refresh"
	opAdd       = "add"
	opRemove    = "remove"
	opCheckAuth = "check_auth"

	resultOK    = "ok"
	resultError = "error"
)

// Metrics counts and times synchronizer operations. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_store_operations_total",
				Help: "Total number of store synchronizer operations by outcome",
			},
			[]string{"store", "operation", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_store_operation_duration_seconds",
				Help:    "Duration of the remote call behind a store operation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"store", "operation"},
		),
	}
}

func (m *Metrics) observe(store, operation string, err error, started time.Time) {
	if m == nil {
		return
	}

	result := resultOK
	if err != nil {
		result = resultError
	}
	m.operations.WithLabelValues(store, operation, result).Inc()
	m.duration.WithLabelValues(store, operation).Observe(time.Since(started).Seconds())
}
