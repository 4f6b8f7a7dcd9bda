// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and the typed errors (ValidationError,
// StorageError) that every layer uses to report the three failure kinds:
// invalid input, missing record, and persistence fault.
package domain
