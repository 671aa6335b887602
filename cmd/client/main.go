package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/client"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/session"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/tui"
	"github.com/MKhiriev/go-storefront/internal/workers"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout belongs to command output
	fmt.Fprintln(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("storefront-client", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("storefront-client", cfg.App.LogFile)

	jar, err := session.NewJar()
	if err != nil {
		log.Fatal().Err(err).Msg("create session jar")
	}

	storefront, err := adapter.NewHTTPStorefrontAdapter(cfg.Adapter, jar, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storefront adapter")
	}

	metricsRegistry := prometheus.NewRegistry()
	registry := store.NewRegistry(storefront, jar,
		store.WithLogger(log),
		store.WithMetrics(store.NewMetrics(metricsRegistry)),
	)

	ws := workers.NewWorkers(workers.NewRefreshJob(registry, cfg.Workers.SyncInterval, log))
	app := client.NewApp(registry, ws, tui.New(registry, log), os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx, args)
	stop()

	logMetrics(log, metricsRegistry)

	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// logMetrics writes a summary of the store operations of this run to the log.
func logMetrics(log *logger.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("gather store metrics")
		return
	}

	for _, mf := range families {
		if mf.GetType().String() != "COUNTER" {
			continue
		}
		for _, m := range mf.GetMetric() {
			ev := log.Debug().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Float64("value", m.GetCounter().GetValue()).Msg("store metric")
		}
	}
}
