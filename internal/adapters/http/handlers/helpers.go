package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// pathID is the chi URL parameter that carries the todo ID.
const pathID = "id"

// todoID extracts the todo ID from the chi URL params. IDs are opaque
// strings; an unknown one surfaces as not found from the repository.
func todoID(r *http.Request) string {
	return chi.URLParam(r, pathID)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body into a generic JSON document so the
// schema validator sees exactly what the client sent. The body is limited to
// maxJSONBodyBytes. On failure, it writes a 400 error response and returns
// false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request) (any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var doc any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return nil, false
	}
	return doc, true
}
