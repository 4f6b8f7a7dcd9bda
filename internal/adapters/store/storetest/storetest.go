// Package storetest provides a conformance suite that every ports.TodoStore
// engine must pass, plus a shared fixture of sample todos.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Base is the timestamp of the oldest fixture todo.
var Base = time.Date(2018, 9, 20, 10, 0, 0, 0, time.UTC)

// Fixture returns six todos. Each is updated one minute after the previous,
// so the last one is the most recent. Done flags are T,T,F,T,F,F.
func Fixture() []todo.Todo {
	samples := []struct {
		title, content string
		done           bool
	}{
		{"本購入", "Docker/Kubernetes 実践コンテナ開発入門", true},
		{"ハイキング", "埼玉県飯能市 25km", true},
		{"ジョギング", "埼玉県さいたま市 5km", false},
		{"買い物", "豆腐、りんご、魚、コロッケ", true},
		{"散歩", "犬の散歩、買い物袋", false},
		{"買い物", "お菓子、ジュース、ビニール袋", false},
	}

	out := make([]todo.Todo, 0, len(samples))
	for i, s := range samples {
		at := Base.Add(time.Duration(i) * time.Minute)
		t := todo.New(s.title, s.content, todo.WithDone(s.done), todo.WithCreatedAt(at))
		t.ID = fmt.Sprintf("todo-%d", i+1)
		out = append(out, t)
	}
	return out
}

// Seed inserts the fixture into store and returns it.
func Seed(t *testing.T, store ports.TodoStore) []todo.Todo {
	t.Helper()

	todos := Fixture()
	for _, td := range todos {
		require.NoError(t, store.Insert(context.Background(), td))
	}
	return todos
}

// Run executes the conformance suite. newStore must return an empty, open
// store; the suite closes it when each subtest ends.
func Run(t *testing.T, newStore func(t *testing.T) ports.TodoStore) {
	t.Helper()

	open := func(t *testing.T) ports.TodoStore {
		t.Helper()
		s := newStore(t)
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	t.Run("insert then find by id", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		want := todo.New("買い物", "豆腐", todo.WithCreatedAt(Base.Add(123*time.Nanosecond)))
		want.ID = "abc"
		require.NoError(t, s.Insert(ctx, want))

		got, err := s.FindByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Content, got.Content)
		assert.Equal(t, want.Done, got.Done)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
		assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt = %v, want %v", got.UpdatedAt, want.UpdatedAt)
	})

	t.Run("find by unknown id is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.FindByID(context.Background(), "0123456789abcdef")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate insert is a storage error", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		td := todo.New("散歩", "")
		td.ID = "dup"
		require.NoError(t, s.Insert(ctx, td))

		err := s.Insert(ctx, td)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("find without filter returns all newest first", func(t *testing.T) {
		s := open(t)
		fixture := Seed(t, s)

		got, err := s.Find(context.Background(), todo.Filter{})
		require.NoError(t, err)
		require.Len(t, got, len(fixture))
		for i := range got {
			assert.Equal(t, fixture[len(fixture)-1-i].ID, got[i].ID)
		}
	})

	t.Run("find on empty store returns empty", func(t *testing.T) {
		s := open(t)

		got, err := s.Find(context.Background(), todo.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find applies filters", func(t *testing.T) {
		s := open(t)
		Seed(t, s)

		done, undone := true, false
		tests := []struct {
			name   string
			filter todo.Filter
			want   int
		}{
			{name: "done", filter: todo.Filter{Done: &done}, want: 3},
			{name: "undone", filter: todo.Filter{Done: &undone}, want: 3},
			{name: "keyword in title or content", filter: todo.Filter{Keyword: "買い物"}, want: 3},
			{name: "keyword absent", filter: todo.Filter{Keyword: "沖縄県"}, want: 0},
			{name: "keyword and status", filter: todo.Filter{Keyword: "埼玉県", Done: &undone}, want: 1},
			{name: "keyword is literal", filter: todo.Filter{Keyword: "%"}, want: 0},
			{name: "keyword is case sensitive", filter: todo.Filter{Keyword: "docker"}, want: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := s.Find(context.Background(), tt.filter)
				require.NoError(t, err)
				assert.Len(t, got, tt.want)
				for _, td := range got {
					assert.True(t, tt.filter.Matches(&td), "result %q does not match filter", td.ID)
				}
			})
		}
	})

	t.Run("returned todos are copies", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		Seed(t, s)

		got, err := s.FindByID(ctx, "todo-1")
		require.NoError(t, err)
		got.Title = "changed"

		again, err := s.FindByID(ctx, "todo-1")
		require.NoError(t, err)
		assert.Equal(t, "本購入", again.Title)
	})

	t.Run("update applies mutation", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		Seed(t, s)

		later := Base.Add(time.Hour)
		n, err := s.Update(ctx, "todo-3", func(td *todo.Todo) {
			td.Update("ジョギング", "10km", true, later)
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := s.FindByID(ctx, "todo-3")
		require.NoError(t, err)
		assert.Equal(t, "10km", got.Content)
		assert.True(t, got.Done)
		assert.True(t, later.Equal(got.UpdatedAt))
		assert.True(t, Base.Add(2*time.Minute).Equal(got.CreatedAt), "CreatedAt must not change")

		all, err := s.Find(ctx, todo.Filter{})
		require.NoError(t, err)
		assert.Equal(t, "todo-3", all[0].ID, "updated todo should sort first")
	})

	t.Run("update unknown id affects nothing", func(t *testing.T) {
		s := open(t)

		called := false
		n, err := s.Update(context.Background(), "missing", func(*todo.Todo) { called = true })
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.False(t, called)
	})

	t.Run("remove deletes once", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		Seed(t, s)

		n, err := s.Remove(ctx, "todo-2")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = s.FindByID(ctx, "todo-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		n, err = s.Remove(ctx, "todo-2")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		all, err := s.Find(ctx, todo.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		td := todo.New("counter", "")
		td.ID = "counter"
		require.NoError(t, s.Insert(ctx, td))

		const workers = 20
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.Update(ctx, "counter", func(td *todo.Todo) {
					td.Content += "x"
				}); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := s.FindByID(ctx, "counter")
		require.NoError(t, err)
		assert.Len(t, got.Content, workers, "every read-modify-write must be applied")
	})

	t.Run("operations after close are storage errors", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())

		_, err := s.Find(context.Background(), todo.Filter{})
		assert.True(t, errors.Is(err, domain.ErrStorage), "Find() error = %v, want ErrStorage", err)

		err = s.Insert(context.Background(), todo.New("late", ""))
		assert.True(t, errors.Is(err, domain.ErrStorage), "Insert() error = %v, want ErrStorage", err)
	})
}
