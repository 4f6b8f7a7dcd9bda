package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoStore defines the store port for the single todo collection.
// Implemented by storage engine adapters (memory, sqlite); called by the
// application layer. Engines serialize concurrent writes themselves and wrap
// driver failures in *domain.StorageError.
type TodoStore interface {
	// Find returns copies of the todos matching filter, ordered by UpdatedAt
	// descending.
	Find(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// FindByID returns a copy of the todo with the given ID.
	// Returns domain.ErrNotFound if no such todo is stored.
	FindByID(ctx context.Context, id string) (*todo.Todo, error)

	// Insert stores a new todo. The ID must be unique.
	Insert(ctx context.Context, t todo.Todo) error

	// Update loads the todo with the given ID, passes it to mutate and
	// persists the result as one atomic step. Returns the number of updated
	// records (0 when the ID is unknown).
	Update(ctx context.Context, id string, mutate func(*todo.Todo)) (int, error)

	// Remove deletes the todo with the given ID and returns the number of
	// removed records (0 when the ID is unknown).
	Remove(ctx context.Context, id string) (int, error)

	// Close releases the resources held by the engine.
	Close() error
}
