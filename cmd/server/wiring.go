package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/guard"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const readinessCheckTimeout = 2 * time.Second

// openEngine opens the storage engine selected by cfg.Driver.
func openEngine(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (ports.TodoStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store; todos are lost on restart")
		return memory.New(), nil
	case config.DriverSQLite:
		logger.Info("opening sqlite store", slog.String("path", cfg.Path))
		store, err := sqlite.Open(ctx, cfg.Path, cfg.BusyTimeout)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*guard.Store, error) {
		engine, err := openEngine(ctx, cfg.Store, logger)
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return guard.New(engine, cfg.Store.Driver, &cfg.Store.CircuitBreaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		store := do.MustInvoke[*guard.Store](i)
		return app.NewTodoRepository(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.WithCheckTimeout(readinessCheckTimeout))
		registry.Register(do.MustInvoke[*guard.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		repo := do.MustInvoke[ports.TodoRepository](i)
		return handlers.NewTodoHandler(repo), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Stack(cfg.Server, logger, metrics)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
