package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"privacymon/internal/api"
	"privacymon/internal/api/handler/v1handler"
	"privacymon/internal/config"
	"privacymon/internal/scanning"
	"privacymon/internal/worker"
	"privacymon/pkg/breach/hibp"
	"privacymon/pkg/broker"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"privacymon/pkg/notify"
	"privacymon/pkg/notify/smtp"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupNotifier starts the alert dispatcher. Alerts go out by email when SMTP
// is configured and to the log otherwise.
func setupNotifier(ctx context.Context, cfg *config.Config) *notify.Dispatcher {
	smtpOpts := smtp.Options{
		Host:     cfg.Notifications.SMTP.Host,
		Port:     cfg.Notifications.SMTP.Port,
		Username: cfg.Notifications.SMTP.Username,
		Password: cfg.Notifications.SMTP.Password,
		From:     cfg.Notifications.SMTP.From,
		To:       cfg.Notifications.SMTP.To,
		Timeout:  cfg.Notifications.SMTP.Timeout,
	}

	var sender notify.Sender = notify.LogSender{}
	if smtpOpts.Configured() {
		sender = smtp.New(smtpOpts)
	} else {
		logger.Warn(ctx, "SMTP not configured, notifications will only be logged")
	}

	dispatcher := notify.NewDispatcher(sender, notify.Options{
		Brand:        cfg.Notifications.Brand,
		DashboardURL: cfg.Notifications.DashboardURL,
		QueueSize:    cfg.Notifications.QueueSize,
		SendTimeout:  cfg.Notifications.SMTP.Timeout,
	})
	dispatcher.Start(ctx)

	return dispatcher
}

func loadCatalog(ctx context.Context, cfg *config.Config) *broker.Catalog {
	if cfg.Brokers.CatalogPath == "" {
		return broker.DefaultCatalog()
	}

	catalog, err := broker.LoadCatalog(cfg.Brokers.CatalogPath)
	if catalog == nil {
		logger.Fatal(ctx, "could not load broker catalog", zap.Error(err))
	}
	if err != nil {
		logger.Warn(ctx, "some broker sites were skipped", zap.Error(err))
	}

	return catalog
}

func newBreachClient(cfg *config.Config, mp metric.MeterProvider) *hibp.Client {
	httpClient := &http.Client{
		Timeout:   cfg.HIBP.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithMeterProvider(mp)),
	}

	return hibp.New(httpClient, hibp.Options{
		APIKey:            cfg.HIBP.APIKey,
		BaseURL:           cfg.HIBP.BaseURL,
		UserAgent:         cfg.HIBP.UserAgent,
		RequestsPerMinute: cfg.HIBP.RequestsPerMinute,
	})
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, background workers and the scan scheduler",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewPrometheusProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			scanMetrics, err := metrics.New(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create scan metrics", zap.Error(err))
			}

			if cfg.HIBP.APIKey == "" {
				logger.Warn(ctx, "HIBP API key not configured, breach scans will fail")
			}

			dispatcher := setupNotifier(ctx, cfg)
			defer dispatcher.Stop()

			coordinator := scanning.NewCoordinator(strg, dispatcher, scanMetrics, scanning.NewOptions(cfg))
			runnerDeps := scanning.RunnerDeps{Storage: strg, Notifier: dispatcher, Metrics: scanMetrics}

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Coordinator: coordinator,
				Runners: []scanning.Runner{
					scanning.NewBreachRunner(runnerDeps, newBreachClient(cfg, mp)),
					scanning.NewBrokerRunner(runnerDeps, loadCatalog(ctx, cfg)),
				},
				Metrics: scanMetrics,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{
				Deps:          v1handler.Deps{Coordinator: coordinator},
				MeterProvider: mp,
				RiverClient:   riverClient,
			}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
