package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

// serveRequestID runs RequestID around a handler that captures the context ID.
func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	if incoming != "" {
		req.Header.Set("X-Request-ID", incoming)
	}
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestID_GeneratesUUIDv4(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, "")

	parsed, err := uuid.Parse(ctxID)
	if err != nil {
		t.Fatalf("uuid.Parse(%q) error = %v", ctxID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if headerID != ctxID {
		t.Errorf("response X-Request-ID = %q, want %q", headerID, ctxID)
	}
}

func TestRequestID_IncomingHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "well formed", incoming: "incoming-123", reused: true},
		{name: "at length limit", incoming: strings.Repeat("a", 128), reused: true},
		{name: "too long", incoming: strings.Repeat("a", 129)},
		{name: "contains space", incoming: "two words"},
		{name: "contains non-ascii", incoming: "id-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxID, headerID := serveRequestID(t, tt.incoming)
			if headerID != ctxID {
				t.Errorf("response X-Request-ID = %q, want %q", headerID, ctxID)
			}
			if tt.reused {
				if ctxID != tt.incoming {
					t.Errorf("RequestIDFromContext = %q, want %q", ctxID, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Errorf("replacement ID %q is not a UUID: %v", ctxID, err)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		id, _ := serveRequestID(t, "")
		seen[id] = struct{}{}
	}

	if len(seen) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(seen))
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty string", id)
	}

	ctx := middleware.WithRequestID(context.Background(), "todo-req-1")
	if got := middleware.RequestIDFromContext(ctx); got != "todo-req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "todo-req-1")
	}
}
