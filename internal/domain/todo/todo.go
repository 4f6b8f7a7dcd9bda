// Package todo holds the Todo entity, the partial-update payload applied to
// it, and the search filter evaluated against it.
package todo

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Todo represents a short text task with a completion flag.
type Todo struct {
	ID        string
	Title     string
	Content   string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Option customizes a Todo built by New.
type Option func(*Todo)

// WithDone sets the initial completion flag.
func WithDone(done bool) Option {
	return func(t *Todo) {
		t.Done = done
	}
}

// WithCreatedAt sets the creation timestamp. UpdatedAt follows it unless
// WithUpdatedAt is also given.
func WithCreatedAt(at time.Time) Option {
	return func(t *Todo) {
		t.CreatedAt = at.UTC()
	}
}

// WithUpdatedAt sets the last-update timestamp.
func WithUpdatedAt(at time.Time) Option {
	return func(t *Todo) {
		t.UpdatedAt = at.UTC()
	}
}

// New builds a Todo with Done defaulting to false, CreatedAt defaulting to
// the current time and UpdatedAt defaulting to CreatedAt. The ID is left
// empty; the repository assigns it.
func New(title, content string, opts ...Option) Todo {
	t := Todo{
		Title:   title,
		Content: content,
	}
	for _, opt := range opts {
		opt(&t)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	return t
}

// Update replaces title and content, overwrites Done with the given value
// and stamps UpdatedAt. It performs no validation and no field merging.
func (t *Todo) Update(title, content string, done bool, at time.Time) {
	t.Title = title
	t.Content = content
	t.Done = done
	t.UpdatedAt = at.UTC()
}

// Complete marks the todo as done. Timestamps are left alone.
func (t *Todo) Complete() {
	t.Done = true
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		fields["updatedAt"] = "must not be before createdAt"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
