package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// MsgTodoNotFound is the message returned for every not-found response.
const MsgTodoNotFound = "A todo with the specified ID was not found."

// ErrorResponse is the error body returned by every endpoint. Code carries
// the HTTP status as a string.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse from a domain error and returns it
// together with the HTTP status it maps to.
func NewErrorResponse(err error) (ErrorResponse, int) {
	status := domainErrorToStatus(err)

	var msg string
	switch status {
	case http.StatusNotFound:
		msg = MsgTodoNotFound
	case http.StatusInternalServerError:
		var serr *domain.StorageError
		if errors.As(err, &serr) {
			msg = serr.Error()
		} else {
			msg = http.StatusText(status)
		}
	default:
		msg = err.Error()
	}

	return ErrorResponse{
		Code:    strconv.Itoa(status),
		Message: msg,
	}, status
}

// WriteErrorResponse writes the error body for err with the mapped status.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := NewErrorResponse(err)
	writeErrorBody(w, r, status, resp)
}

// WriteStatusResponse writes an error body for a status raised by the
// transport itself, such as 429 from the rate limiter or 504 on timeout.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int) {
	writeErrorBody(w, r, status, ErrorResponse{
		Code:    strconv.Itoa(status),
		Message: http.StatusText(status),
	})
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
