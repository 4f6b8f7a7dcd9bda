package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const selectColumns = `SELECT id, title, content, done, created_at, updated_at FROM todos`

// Store implements ports.TodoStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// Name returns the health check identifier.
func (s *Store) Name() string {
	return "store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return domain.NewStorageError("ping", s.db.PingContext(ctx))
}

// Find returns the matching todos ordered by updated_at descending.
// The keyword is matched with instr, a case-sensitive literal search.
func (s *Store) Find(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	var (
		where []string
		args  []any
	)
	if filter.Keyword != "" {
		where = append(where, "(instr(title, ?) > 0 OR instr(content, ?) > 0)")
		args = append(args, filter.Keyword, filter.Keyword)
	}
	if filter.Done != nil {
		where = append(where, "done = ?")
		args = append(args, boolToInt(*filter.Done))
	}

	query := selectColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY updated_at DESC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStorageError("find", err)
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, domain.NewStorageError("find", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("find", err)
	}
	return todos, nil
}

// FindByID returns the todo with the given ID or domain.ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	t, err := scanTodo(s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStorageError("find", err)
	}
	return &t, nil
}

// Insert stores a new todo.
func (s *Store) Insert(ctx context.Context, t todo.Todo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, content, done, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Content, boolToInt(t.Done), toUnixNano(t.CreatedAt), toUnixNano(t.UpdatedAt),
	)
	return domain.NewStorageError("insert", err)
}

// Update reads, mutates and writes the todo inside one transaction.
func (s *Store) Update(ctx context.Context, id string, mutate func(*todo.Todo)) (int, error) {
	var affected int
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		t, err := scanTodo(tx.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		mutate(&t)

		res, err := tx.ExecContext(ctx,
			`UPDATE todos SET title = ?, content = ?, done = ?, updated_at = ? WHERE id = ?`,
			t.Title, t.Content, boolToInt(t.Done), toUnixNano(t.UpdatedAt), id,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		affected = int(n)
		return nil
	})
	if err != nil {
		return 0, domain.NewStorageError("update", err)
	}
	return affected, nil
}

// Remove deletes the todo with the given ID.
func (s *Store) Remove(ctx context.Context, id string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return 0, domain.NewStorageError("remove", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError("remove", err)
	}
	return int(n), nil
}

// Close closes the database.
func (s *Store) Close() error {
	return domain.NewStorageError("close", s.db.Close())
}
