// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack assembles the production chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → Handler
//
// Rate limiting runs after Logging so rejected requests still produce an
// access log line, and before Timeout so a rejected request never starts a
// handler goroutine.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the service middleware in application order, ready to pass
// to the router. The server write timeout doubles as the per-request
// deadline. A nil metrics disables request metrics but keeps tracing.
func Stack(cfg config.ServerConfig, logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		RateLimit(cfg.RateLimit),
		Timeout(cfg.WriteTimeout),
	}
}
