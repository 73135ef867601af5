package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"user-registry/internal/platform/config"
	"user-registry/internal/platform/health"
	"user-registry/internal/platform/httpserver"
	"user-registry/internal/platform/logger"
	"user-registry/internal/platform/middleware"
	"user-registry/internal/user/handler"
	"user-registry/internal/user/metrics"
	"user-registry/internal/user/service"
	"user-registry/internal/user/store"
	"user-registry/internal/user/tracer"
	"user-registry/pkg/platform/validation"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing user-registry",
		"addr", cfg.Addr,
		"metrics_addr", cfg.MetricsAddr,
		"environment", cfg.Environment,
	)

	users := store.NewInMemory()

	svc, err := service.New(users,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("store", func() error {
		_, err := users.Count(context.Background())
		return err
	})
	healthHandler.RegisterStat("users", func() int {
		n, _ := users.Count(context.Background())
		return n
	})

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.ClientMetadata(&middleware.MetadataConfig{}))
	router.Use(middleware.Device)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(middleware.NewMetrics()))
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.BodyLimit(validation.MaxBodySize))

	healthHandler.Register(router)
	handler.New(svc, log).Register(router)

	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)
	metricsSrv := httpserver.New(cfg.MetricsAddr, metricsRouter, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if merr := metricsSrv.Shutdown(shutdownCtx); err == nil {
			err = merr
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
