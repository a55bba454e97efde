// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the exposure monitor.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"privacymon/internal/api/handler/v1handler"
	"privacymon/internal/config"
	"privacymon/pkg/controller"
	"privacymon/pkg/logger"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const riverUIPrefix = "/riverui"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins are the origins allowed to call the API. Empty allows any.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider instruments the v1 routes. Nil disables instrumentation.
	MeterProvider metric.MeterProvider
	// RiverClient backs the queue dashboard. Nil disables it.
	RiverClient *river.Client[pgx.Tx]
}

// NewRouter wires every route:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, authenticated and instrumented with otelhttp
// - River UI queue dashboard
// - pprof endpoints for profiling
func NewRouter(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS(opts.CORSOrigins))
	r.Use(controller.WithLogger)

	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/v1/docs/*", v5emb.New(
		"Privacy Monitor",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	var v1 http.Handler = v1handler.New(deps.Deps).Routes(secHandler)
	if deps.MeterProvider != nil {
		v1 = otelhttp.NewHandler(v1, "v1", otelhttp.WithMeterProvider(deps.MeterProvider))
	}
	if opts.RequestTimeout > 0 {
		v1 = http.TimeoutHandler(v1, opts.RequestTimeout, `{"error":"request timed out"}`)
	}
	r.Mount("/v1", v1)

	if deps.RiverClient != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
			Prefix:    riverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		r.Handle(riverUIPrefix, ui)
		r.Handle(riverUIPrefix+"/*", ui)
	}

	r.Mount("/debug/pprof", controller.PprofMux())

	return r, nil
}

// NewServer returns a configured *http.Server serving NewRouter.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewRouter(ctx, deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
