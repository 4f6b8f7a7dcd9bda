package domain_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title": domain.MsgMustNotEmpty,
		"done":  "must be a boolean",
	}}

	want := "validation error: done: must be a boolean; title: must not be empty"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("creating todo: %w", &domain.ValidationError{
		Fields: map[string]string{"title": domain.MsgRequired},
	})

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if errors.Is(err, domain.ErrStorage) || errors.Is(err, domain.ErrNotFound) {
		t.Error("validation error matched an unrelated sentinel")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["title"] != domain.MsgRequired {
		t.Errorf("errors.As() Fields = %v, want title: %s", verr, domain.MsgRequired)
	}
}

func TestStorageError(t *testing.T) {
	t.Parallel()

	cause := sql.ErrConnDone
	err := domain.NewStorageError("insert", cause)

	if !errors.Is(err, domain.ErrStorage) {
		t.Error("errors.Is(err, ErrStorage) = false, want true")
	}
	if !errors.Is(err, sql.ErrConnDone) {
		t.Error("errors.Is(err, cause) = false, want the driver error reachable")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("storage error matched ErrNotFound")
	}

	want := "storage error: insert: " + cause.Error()
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var serr *domain.StorageError
	if !errors.As(err, &serr) || serr.Op != "insert" {
		t.Errorf("errors.As() = %+v, want Op insert", serr)
	}
}

func TestNewStorageError_NilCause(t *testing.T) {
	t.Parallel()

	if err := domain.NewStorageError("find", nil); err != nil {
		t.Errorf("NewStorageError(nil) = %v, want nil", err)
	}
}
