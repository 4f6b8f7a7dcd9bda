package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockTodoRepository, *mocks.MockHealthRegistry) {
	t.Helper()
	repo := mocks.NewMockTodoRepository(t)
	registry := mocks.NewMockHealthRegistry(t)

	th := handlers.NewTodoHandler(repo)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(th, hh, middlewares...), repo, registry
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)
	mux, ok := router.(*chi.Mux)
	require.True(t, ok, "router is %T, want *chi.Mux", router)

	var registered []string
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered = append(registered, method+" "+route)
		return nil
	}))

	assert.ElementsMatch(t, []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /todos/",
		"POST /todos/",
		"GET /todos/{id}",
		"PUT /todos/{id}",
		"DELETE /todos/{id}",
		"POST /todos/{id}/complete",
	}, registered)
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		expect     func(repo *mocks.MockTodoRepository, registry *mocks.MockHealthRegistry)
		wantStatus int
	}{
		{
			name:   "search without trailing slash decodes q",
			method: http.MethodGet,
			target: "/todos?q=%E6%B2%96%E7%B8%84%E7%9C%8C",
			expect: func(repo *mocks.MockTodoRepository, _ *mocks.MockHealthRegistry) {
				repo.EXPECT().Search(mock.Anything, todo.Filter{Keyword: "沖縄県"}).Return([]todo.Todo{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "path id reaches repository",
			method: http.MethodDelete,
			target: "/todos/abc-123",
			expect: func(repo *mocks.MockTodoRepository, _ *mocks.MockHealthRegistry) {
				repo.EXPECT().Delete(mock.Anything, "abc-123").Return(1, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "readiness",
			method: http.MethodGet,
			target: "/health/ready",
			expect: func(_ *mocks.MockTodoRepository, registry *mocks.MockHealthRegistry) {
				registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})
			},
			wantStatus: http.StatusOK,
		},
		{name: "unknown path", method: http.MethodGet, target: "/projects", wantStatus: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodPatch, target: "/todos/abc", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, repo, registry := newTestRouter(t)
			if tt.expect != nil {
				tt.expect(repo, registry)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus >= http.StatusBadRequest {
				var body dto.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, fmt.Sprint(tt.wantStatus), body.Code)
			}
		})
	}
}

func TestRouter_MiddlewareWrapsRoutes(t *testing.T) {
	t.Parallel()

	var seen []string
	record := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	router, _, _ := newTestRouter(t, record)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))

	assert.Equal(t, []string{"/health/live", "/missing"}, seen)
}

// TestRouter_FixtureQueries runs the search queries from the sample data set
// against a seeded memory engine.
func TestRouter_FixtureQueries(t *testing.T) {
	t.Parallel()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })
	storetest.Seed(t, store)

	router := adapthttp.NewRouter(
		handlers.NewTodoHandler(app.NewTodoRepository(store, nil)),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
	)

	tests := []struct {
		query   url.Values
		wantIDs []string
	}{
		{query: url.Values{}, wantIDs: []string{"todo-6", "todo-5", "todo-4", "todo-3", "todo-2", "todo-1"}},
		{query: url.Values{"status": {"done"}}, wantIDs: []string{"todo-4", "todo-2", "todo-1"}},
		{query: url.Values{"q": {"買い物"}}, wantIDs: []string{"todo-6", "todo-5", "todo-4"}},
		{query: url.Values{"q": {"沖縄県"}}, wantIDs: []string{}},
		{query: url.Values{"q": {"埼玉県"}, "status": {"undone"}}, wantIDs: []string{"todo-3"}},
	}

	for _, tt := range tests {
		t.Run("?"+tt.query.Encode(), func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos?"+tt.query.Encode(), http.NoBody))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var list []dto.TodoResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
			ids := make([]string, 0, len(list))
			for _, td := range list {
				ids = append(ids, td.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// TestRouter_Lifecycle drives the full stack (router, handlers, repository,
// memory engine) through create, update, complete, search and delete.
func TestRouter_Lifecycle(t *testing.T) {
	t.Parallel()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	repo := app.NewTodoRepository(store, nil)
	router := adapthttp.NewRouter(
		handlers.NewTodoHandler(repo),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
	)

	send := func(method, target, body string) *httptest.ResponseRecorder {
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, target, r)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		router.ServeHTTP(rec, req)
		return rec
	}
	decodeTodo := func(rec *httptest.ResponseRecorder) dto.TodoResponse {
		var resp dto.TodoResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		return resp
	}

	rec := send(http.MethodPost, "/todos", `{"title":"ハイキング","content":"埼玉県飯能市 25km"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeTodo(rec)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Done)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	rec = send(http.MethodPost, "/todos", `{"content":"タイトルなし"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(http.MethodPut, "/todos/"+created.ID, `{"content":"埼玉県飯能市 30km"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeTodo(rec)
	assert.Equal(t, "ハイキング", updated.Title)
	assert.Equal(t, "埼玉県飯能市 30km", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	rec = send(http.MethodPost, "/todos/"+created.ID+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decodeTodo(rec).Done)

	rec = send(http.MethodGet, "/todos?status=done&q=%E5%9F%BC%E7%8E%89%E7%9C%8C", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.TodoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = send(http.MethodDelete, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = send(http.MethodGet, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(http.MethodDelete, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
