// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoRepository implements ports.TodoRepository.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository implements ports.TodoRepository over a storage engine. It
// validates entries before they reach storage, assigns IDs and timestamps,
// applies partial updates and maps missing records to domain.ErrNotFound.
type TodoRepository struct {
	store  ports.TodoStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// RepositoryOption configures a TodoRepository.
type RepositoryOption func(*TodoRepository)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *TodoRepository) {
		r.now = now
	}
}

// WithIDGenerator overrides the ID generator. IDs must never repeat.
func WithIDGenerator(newID func() string) RepositoryOption {
	return func(r *TodoRepository) {
		r.newID = newID
	}
}

// NewTodoRepository creates a TodoRepository backed by the given store. A nil
// logger is replaced by a discarding one.
func NewTodoRepository(store ports.TodoStore, logger *slog.Logger, opts ...RepositoryOption) *TodoRepository {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &TodoRepository{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Search returns the todos matching filter, most recently updated first.
func (r *TodoRepository) Search(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	r.logger.InfoContext(ctx, "searching todos",
		slog.String("keyword", filter.Keyword),
		slog.Any("done", filter.Done),
	)

	todos, err := r.store.Find(ctx, filter)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to search todos",
			slog.String("operation", "Search"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// GetByID returns a single todo, or domain.ErrNotFound.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*todo.Todo, error) {
	r.logger.InfoContext(ctx, "fetching todo", slog.String("todo_id", id))

	t, err := r.store.FindByID(ctx, id)
	if err != nil {
		r.logFailure(ctx, "GetByID", id, err)
		return nil, err
	}
	return t, nil
}

// Create validates the entry and stores a new todo with a fresh ID and
// CreatedAt == UpdatedAt.
func (r *TodoRepository) Create(ctx context.Context, entry todo.Entry) (*todo.Todo, error) {
	r.logger.InfoContext(ctx, "creating todo")

	if err := entry.ValidateCreate(); err != nil {
		return nil, err
	}

	t := entry.NewTodo(r.newID(), r.now())
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := r.store.Insert(ctx, t); err != nil {
		r.logFailure(ctx, "Create", t.ID, err)
		return nil, err
	}

	return &t, nil
}

// Update merges the supplied fields into an existing todo. Fields omitted
// from entry keep their stored values; UpdatedAt is always refreshed.
func (r *TodoRepository) Update(ctx context.Context, id string, entry todo.Entry) (int, error) {
	r.logger.InfoContext(ctx, "updating todo", slog.String("todo_id", id))

	if err := entry.ValidateUpdate(); err != nil {
		return 0, err
	}

	at := r.now()
	n, err := r.store.Update(ctx, id, func(t *todo.Todo) {
		entry.MergeInto(t, at)
	})
	return r.affected(ctx, "Update", id, n, err)
}

// Complete marks an existing todo as done and refreshes UpdatedAt.
func (r *TodoRepository) Complete(ctx context.Context, id string) (int, error) {
	r.logger.InfoContext(ctx, "completing todo", slog.String("todo_id", id))

	at := r.now()
	n, err := r.store.Update(ctx, id, func(t *todo.Todo) {
		t.Complete()
		if at.After(t.UpdatedAt) {
			t.UpdatedAt = at
		}
	})
	return r.affected(ctx, "Complete", id, n, err)
}

// Delete removes an existing todo.
func (r *TodoRepository) Delete(ctx context.Context, id string) (int, error) {
	r.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", id))

	n, err := r.store.Remove(ctx, id)
	return r.affected(ctx, "Delete", id, n, err)
}

// affected turns a store write result into the repository contract: a
// storage fault passes through, zero records becomes domain.ErrNotFound.
func (r *TodoRepository) affected(ctx context.Context, op, id string, n int, err error) (int, error) {
	if err != nil {
		r.logFailure(ctx, op, id, err)
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// logFailure logs storage faults at error level. Not-found is an expected
// outcome and is logged at debug.
func (r *TodoRepository) logFailure(ctx context.Context, op, id string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		r.logger.DebugContext(ctx, "todo not found",
			slog.String("operation", op),
			slog.String("todo_id", id),
		)
		return
	}
	r.logger.ErrorContext(ctx, "todo operation failed",
		slog.String("operation", op),
		slog.String("todo_id", id),
		slog.Any("error", err),
	)
}
