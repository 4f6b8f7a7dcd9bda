// Package guard decorates a todo store with a circuit breaker, OpenTelemetry
// spans and operation metrics.
//
// The processing order for every call is:
//
//	Circuit Breaker → OTEL Span → Store → Metrics
//
// Construction:
//
//	store := guard.New(engine, "sqlite", &cfg.Store.CircuitBreaker, metrics, logger)
//
// Only storage faults count against the breaker. Not-found results and
// canceled contexts are expected outcomes and never trip it. Failed calls
// are not retried.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const tracerName = "todo-service/store"

// Store wraps a ports.TodoStore. It satisfies ports.TodoStore itself so it
// can be injected wherever an engine is expected.
type Store struct {
	next    ports.TodoStore
	driver  string
	breaker *gobreaker.CircuitBreaker[any]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next. The driver name labels spans, metrics and the breaker.
// If metrics is nil, metric recording is skipped. A nil logger is replaced by
// a discarding one.
func New(next ports.TodoStore, driver string, cfg *config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "store." + driver,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		next:    next,
		driver:  driver,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// isSuccessful reports whether err should count as a success for the breaker.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return !errors.Is(err, domain.ErrStorage)
}

// Name returns the health check identifier.
func (s *Store) Name() string {
	return "store"
}

// HealthCheck fails while the breaker is open or half-open. With the
// breaker closed it defers to the wrapped engine when that engine is itself
// a health checker.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("store %s: degraded (circuit breaker half-open)", s.driver)
	case gobreaker.StateOpen:
		return fmt.Errorf("store %s: failing (circuit breaker open)", s.driver)
	default:
		return fmt.Errorf("store %s: unknown circuit breaker state %v", s.driver, state)
	}

	if hc, ok := s.next.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// Find implements ports.TodoStore.
func (s *Store) Find(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	res, err := s.execute(ctx, "find", func(ctx context.Context) (any, error) {
		return s.next.Find(ctx, filter)
	}, attribute.Bool("todo.filter.keyword", filter.Keyword != ""))
	if err != nil {
		return nil, err
	}
	return res.([]todo.Todo), nil
}

// FindByID implements ports.TodoStore.
func (s *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	res, err := s.execute(ctx, "find_by_id", func(ctx context.Context) (any, error) {
		return s.next.FindByID(ctx, id)
	}, attribute.String("todo.id", id))
	if err != nil {
		return nil, err
	}
	return res.(*todo.Todo), nil
}

// Insert implements ports.TodoStore.
func (s *Store) Insert(ctx context.Context, t todo.Todo) error {
	_, err := s.execute(ctx, "insert", func(ctx context.Context) (any, error) {
		return nil, s.next.Insert(ctx, t)
	}, attribute.String("todo.id", t.ID))
	return err
}

// Update implements ports.TodoStore.
func (s *Store) Update(ctx context.Context, id string, mutate func(*todo.Todo)) (int, error) {
	res, err := s.execute(ctx, "update", func(ctx context.Context) (any, error) {
		return s.next.Update(ctx, id, mutate)
	}, attribute.String("todo.id", id))
	if err != nil {
		return 0, err
	}
	return res.(int), nil
}

// Remove implements ports.TodoStore.
func (s *Store) Remove(ctx context.Context, id string) (int, error) {
	res, err := s.execute(ctx, "remove", func(ctx context.Context) (any, error) {
		return s.next.Remove(ctx, id)
	}, attribute.String("todo.id", id))
	if err != nil {
		return 0, err
	}
	return res.(int), nil
}

// Close closes the wrapped engine. It bypasses the breaker.
func (s *Store) Close() error {
	return s.next.Close()
}

// execute runs fn through the breaker inside a client span and records
// metrics. Breaker rejections are reported as storage errors.
func (s *Store) execute(
	ctx context.Context,
	op string,
	fn func(context.Context) (any, error),
	attrs ...attribute.KeyValue,
) (any, error) {
	start := time.Now()

	res, err := s.breaker.Execute(func() (any, error) {
		spanCtx, span := s.startSpan(ctx, op, attrs)
		defer span.End()

		res, err := fn(spanCtx)
		finishSpan(span, err)
		return res, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.logger.WarnContext(ctx, "store call rejected by circuit breaker",
			slog.String("operation", op),
			slog.String("driver", s.driver),
		)
		err = domain.NewStorageError(op, err)
	}

	s.recordMetrics(ctx, op, start, err)
	return res, err
}

func (s *Store) startSpan(ctx context.Context, op string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)

	attrs = append([]attribute.KeyValue{
		attribute.String("db.system", s.driver),
		attribute.String("db.operation", op),
	}, attrs...)

	return tracer.Start(ctx, "store "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// finishSpan records the outcome on the span. Not-found is not an error.
func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records operation duration and count. Metrics are recorded
// outside the breaker so that rejections are captured. Safe to call with nil
// metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.driver),
		telemetry.AttrDBOp.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
