package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errOpen := errors.New("circuit breaker open")
	errLocked := errors.New("database is locked")

	tests := []struct {
		name  string
		setup func(t *testing.T) []*mocks.MockHealthChecker
		want  map[string]error
	}{
		{
			name:  "nothing registered",
			setup: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:  map[string]error{},
		},
		{
			name: "all healthy",
			setup: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "store", nil)}
			},
			want: map[string]error{"sqlite": nil, "store": nil},
		},
		{
			name: "breaker open",
			setup: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "store", errOpen)}
			},
			want: map[string]error{"sqlite": nil, "store": errOpen},
		},
		{
			name: "duplicate name keeps last registered",
			setup: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "sqlite", errLocked)}
			},
			want: map[string]error{"sqlite": errLocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.setup(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("store")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["store"], context.Canceled)
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("sqlite")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)

	assert.ErrorIs(t, r.CheckAll(context.Background())["sqlite"], context.DeadlineExceeded)
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	const n = 3
	var arrived sync.WaitGroup
	arrived.Add(n)

	r := health.New(health.WithCheckTimeout(time.Second))
	for range n {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return("sqlite")
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			// Every check must be in flight at once for the barrier to open.
			arrived.Done()
			done := make(chan struct{})
			go func() { arrived.Wait(); close(done) }()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		r.Register(c)
	}

	assert.NoError(t, r.CheckAll(context.Background())["sqlite"])
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("store").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
