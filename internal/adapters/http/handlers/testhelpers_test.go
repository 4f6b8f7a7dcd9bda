package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const testTodoID = "8f14e45f-ceea-467a-9af0-2d1e2b0c3a11"

var testTime = time.Date(2018, 9, 20, 10, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withTodoID(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{"id": testTodoID})
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:        testTodoID,
		Title:     "買い物",
		Content:   "豆腐、大根",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
