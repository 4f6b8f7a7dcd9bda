package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/guard"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

type serveOptions struct {
	profile   string
	configDir string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Configuration is layered from built-in defaults,
{config-dir}/base.yaml, {config-dir}/{profile}.yaml and APP_* environment
variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.profile == "" {
				opts.profile = os.Getenv("APP_PROFILE")
			}
			if opts.profile == "" {
				return errors.New("--profile or APP_PROFILE is required (e.g. local, dev, prod)")
			}
			return serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "configuration profile (falls back to APP_PROFILE)")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	return cmd
}

func serve(ctx context.Context, opts serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		flushTelemetry(otel, logger)
		return fmt.Errorf("resolving server: %w", err)
	}
	store := do.MustInvoke[*guard.Store](injector)

	logger.Info("todo store ready",
		slog.String("driver", cfg.Store.Driver),
		slog.String("profile", opts.profile),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}

		// Wait for Start() goroutine to return.
		<-serverErr
	}

	// In-flight requests are drained; release the store.
	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	flushTelemetry(otel, logger)

	logger.Info("shutdown complete")
	return runErr
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
