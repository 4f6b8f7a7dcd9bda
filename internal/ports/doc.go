// Package ports holds the interfaces that separate the HTTP adapter, the
// application layer and the storage engines.
//
// TodoRepository is what handlers call; the app package implements it.
// TodoStore is what the app package calls; memory, sqlite and the guard
// decorator implement it. HealthChecker and HealthRegistry back the
// readiness probe.
package ports
