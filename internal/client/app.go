package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qa-console/internal/adapter"
	"github.com/MKhiriev/qa-console/internal/config"
	myHTTP "github.com/MKhiriev/qa-console/internal/handler/http"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/metrics"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/internal/server"
	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/internal/store"
	"github.com/MKhiriev/qa-console/internal/tui"
	"github.com/MKhiriev/qa-console/internal/workers"
	"github.com/MKhiriev/qa-console/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App is a console with its dependencies. Close releases the history
// database when Run is never called.
type App struct {
	storages *store.ClientStorages
	workers  *workers.Workers
	frontend func(ctx context.Context) error
	logger   *logger.Logger
}

// deps are shared by both consoles.
type deps struct {
	cfg       *config.ClientConfig
	routes    *router.Table
	toasts    *notify.Toasts
	notifier  notify.Notifier
	registry  *prometheus.Registry
	storages  *store.ClientStorages
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

// NewTerminalApp builds the terminal console opened at router.PathRoot.
func NewTerminalApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	d, err := newDeps(ctx, cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ui, err := tui.New(d.services, d.toasts, d.notifier, d.routes, d.buildInfo, logger)
	if err != nil {
		_ = d.storages.Close()
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return newApp(d, func(ctx context.Context) error {
		return ui.Run(ctx, router.PathRoot)
	}, logger), nil
}

// NewWebApp builds the web console served on cfg.Web.HTTPAddress.
func NewWebApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	d, err := newDeps(ctx, cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	webMetrics, err := metrics.NewWebMetrics(d.registry)
	if err != nil {
		_ = d.storages.Close()
		return nil, fmt.Errorf("error registering web metrics: %w", err)
	}

	handler, err := myHTTP.NewHandler(d.services, d.toasts, d.notifier, d.routes, webMetrics, d.registry, d.buildInfo, logger)
	if err != nil {
		_ = d.storages.Close()
		return nil, fmt.Errorf("error creating web handler: %w", err)
	}
	if err := handler.RestoreTranscript(ctx); err != nil {
		logger.Warn().Err(err).Msg("chat transcript not restored, starting a new session")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Web, logger)
	if err != nil {
		_ = d.storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return newApp(d, srv.RunServer, logger), nil
}

func newDeps(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*deps, error) {
	toasts := notify.NewToasts(cfg.App.NotificationTTL, notify.DefaultCapacity)
	notifier := notify.Multi(toasts, notify.NewLogNotifier(logger))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	clientMetrics, err := metrics.NewClientMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("error registering client metrics: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, notifier, clientMetrics, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating local storage: %w", err)
	}

	return &deps{
		cfg:       cfg,
		routes:    router.Default(),
		toasts:    toasts,
		notifier:  notifier,
		registry:  registry,
		storages:  storages,
		services:  service.NewClientServices(storages, serverAdapter, notifier, cfg.App, logger),
		buildInfo: buildInfo,
	}, nil
}

func newApp(d *deps, frontend func(ctx context.Context) error, logger *logger.Logger) *App {
	return &App{
		storages: d.storages,
		workers:  workers.NewWorkers(d.cfg, d.storages, logger),
		frontend: frontend,
		logger:   logger,
	}
}

// Run starts the background workers, blocks in the console and releases
// everything once the console exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	a.logger.Info().Int("workers", a.workers.Len()).Msg("background workers started")

	err := a.frontend(ctx)

	a.workers.Stop()
	if closeErr := a.Close(); closeErr != nil {
		a.logger.Err(closeErr).Msg("error closing local storage")
	}

	return err
}

func (a *App) Close() error {
	return a.storages.Close()
}
