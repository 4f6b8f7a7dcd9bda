package ports

import "context"

// HealthChecker reports whether a storage component can serve requests.
type HealthChecker interface {
	// Name keys the checker in the readiness body, e.g. "store".
	Name() string

	// HealthCheck returns nil when healthy. It must give up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns their results by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
