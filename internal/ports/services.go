package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository defines the service port for todo collection operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Failures are reported as domain.ErrValidation, domain.ErrNotFound or
// domain.ErrStorage and never conflated.
type TodoRepository interface {
	// Search returns todos matching the filter, most recently updated first.
	// Returns an empty slice when nothing matches.
	Search(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetByID returns a single todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetByID(ctx context.Context, id string) (*todo.Todo, error)

	// Create validates the entry, assigns an ID and timestamps, persists the
	// todo and returns the stored record.
	// Returns domain.ErrValidation if the title is missing or empty.
	Create(ctx context.Context, entry todo.Entry) (*todo.Todo, error)

	// Update applies the fields present in entry to an existing todo and
	// returns the number of affected records.
	// Returns 0 and domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id string, entry todo.Entry) (int, error)

	// Complete marks an existing todo as done and returns the number of
	// affected records.
	// Returns 0 and domain.ErrNotFound if the todo does not exist.
	Complete(ctx context.Context, id string) (int, error)

	// Delete removes a todo and returns the number of removed records.
	// Returns 0 and domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id string) (int, error)
}
