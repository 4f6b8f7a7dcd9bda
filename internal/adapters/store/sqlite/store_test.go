package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// setupTestStore opens an in-memory database with migrations applied.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), MemoryPath, time.Second)
	require.NoError(t, err)
	return s
}

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.TodoStore {
		return setupTestStore(t)
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "", time.Second)
	require.Error(t, err)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	defer s.Close()

	require.NoError(t, runMigrations(context.Background(), s.db))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "todos.db")

	s, err := Open(ctx, path, time.Second)
	require.NoError(t, err)
	fixture := storetest.Seed(t, s)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path, time.Second)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Find(ctx, todo.Filter{})
	require.NoError(t, err)
	require.Len(t, got, len(fixture))
	assert.Equal(t, fixture[len(fixture)-1].ID, got[0].ID)
	assert.True(t, fixture[0].CreatedAt.Equal(got[len(got)-1].CreatedAt))
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	assert.Equal(t, "store", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.HealthCheck(context.Background()), domain.ErrStorage)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	defer s.Close()
	ctx := context.Background()
	storetest.Seed(t, s)

	errBoom := assert.AnError
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM todos`); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	all, err := s.Find(ctx, todo.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 6, "rolled back delete must leave rows in place")
}
