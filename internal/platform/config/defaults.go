package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          0,

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          DriverMemory,
		"store.path":                            "data/todos.db",
		"store.busy_timeout":                    "5s",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
