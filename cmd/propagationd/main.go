package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/signalsfoundry/itu-propagation/internal/api"
	"github.com/signalsfoundry/itu-propagation/internal/logging"
	"github.com/signalsfoundry/itu-propagation/internal/observability"
	"github.com/signalsfoundry/itu-propagation/kb"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the propagation API listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	materialsPath := flag.String("materials", "", "Optional path to a JSON file with extra material coefficients")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	collector, err := observability.NewModelCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}

	metricsSrv := serveMetrics(*metricsAddr, collector, log)

	materials := kb.NewMaterialKB()
	materials.OnCountChange(collector.SetMaterialCount)
	collector.SetMaterialCount(materials.MaterialCount())
	loadMaterials(log, materials, *materialsPath)

	apiSrv := &http.Server{
		Addr:    *addr,
		Handler: api.NewServer(materials, collector, log).Routes(),
	}

	log.Info(ctx, "starting propagation API server", logging.String("addr", *addr))
	go func() {
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "API server exited", logging.String("error", err.Error()))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down propagation API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func serveMetrics(addr string, collector *observability.ModelCollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func loadMaterials(log logging.Logger, materials *kb.MaterialKB, path string) {
	if path == "" || materials == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn(context.Background(), "skipping material table load", logging.String("path", path), logging.String("error", err.Error()))
		return
	}
	defer f.Close()

	summary, err := kb.LoadMaterialTable(materials, f)
	if err != nil {
		log.Warn(context.Background(), "failed to load material table", logging.String("path", path), logging.String("error", err.Error()))
		return
	}

	log.Info(context.Background(), "loaded material table",
		logging.String("path", path),
		logging.Int("materials", len(summary.Materials)),
		logging.Int("textures", len(summary.Textures)),
	)
}
