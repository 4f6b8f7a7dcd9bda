// Package memory provides an in-process todo store. Contents live only as
// long as the process and are lost on restart.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// errClosed is returned by every operation after Close.
var errClosed = errors.New("store is closed")

// Store keeps todos in a map guarded by a read/write mutex. Reads share the
// lock; writes hold it exclusively so a read-modify-write never interleaves
// with another writer.
type Store struct {
	mu     sync.RWMutex
	todos  map[string]todo.Todo
	closed bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{todos: make(map[string]todo.Todo)}
}

// Name returns the health check identifier.
func (s *Store) Name() string {
	return "store"
}

// HealthCheck reports whether the store is still open.
func (s *Store) HealthCheck(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return domain.NewStorageError("health", errClosed)
	}
	return nil
}

// Find returns copies of the matching todos, most recently updated first.
func (s *Store) Find(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("find", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, domain.NewStorageError("find", errClosed)
	}

	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if filter.Matches(&t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b todo.Todo) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// FindByID returns a copy of the todo with the given ID.
func (s *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("find", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, domain.NewStorageError("find", errClosed)
	}

	t, ok := s.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// Insert stores a new todo.
func (s *Store) Insert(ctx context.Context, t todo.Todo) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("insert", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.NewStorageError("insert", errClosed)
	}
	if _, exists := s.todos[t.ID]; exists {
		return domain.NewStorageError("insert", fmt.Errorf("duplicate id %q", t.ID))
	}

	s.todos[t.ID] = t
	return nil
}

// Update applies mutate to the stored todo under the write lock.
func (s *Store) Update(ctx context.Context, id string, mutate func(*todo.Todo)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, domain.NewStorageError("update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, domain.NewStorageError("update", errClosed)
	}

	t, ok := s.todos[id]
	if !ok {
		return 0, nil
	}

	mutate(&t)
	t.ID = id
	s.todos[id] = t
	return 1, nil
}

// Remove deletes the todo with the given ID.
func (s *Store) Remove(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, domain.NewStorageError("remove", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, domain.NewStorageError("remove", errClosed)
	}

	if _, ok := s.todos[id]; !ok {
		return 0, nil
	}
	delete(s.todos, id)
	return 1, nil
}

// Close drops the contents. Subsequent calls fail with a storage error.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.todos = nil
	return nil
}
