package todo

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Entry is the partial payload clients send to create or update a todo.
// A nil field means the client did not supply it.
type Entry struct {
	Title   *string
	Content *string
	Done    *bool
}

// EntryFromFields copies the recognized fields (title, content, done) out of
// an arbitrary decoded document. Values of the wrong type are ignored and a
// missing title stays nil.
func EntryFromFields(fields map[string]any) Entry {
	var e Entry
	if v, ok := fields["title"].(string); ok {
		e.Title = &v
	}
	if v, ok := fields["content"].(string); ok {
		e.Content = &v
	}
	if v, ok := fields["done"].(bool); ok {
		e.Done = &v
	}
	return e
}

// ValidateCreate requires a non-blank title.
func (e Entry) ValidateCreate() error {
	if e.Title == nil {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}
	if strings.TrimSpace(*e.Title) == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgMustNotEmpty}}
	}
	return nil
}

// ValidateUpdate rejects a title that is supplied but blank. Omitted fields
// are fine: they keep their stored values.
func (e Entry) ValidateUpdate() error {
	if e.Title != nil && strings.TrimSpace(*e.Title) == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgMustNotEmpty}}
	}
	return nil
}

// NewTodo builds a fresh Todo from the entry, stamped at the given time.
// Callers validate with ValidateCreate first.
func (e Entry) NewTodo(id string, at time.Time) Todo {
	t := New(deref(e.Title, ""), deref(e.Content, ""),
		WithDone(deref(e.Done, false)),
		WithCreatedAt(at),
	)
	t.ID = id
	return t
}

// MergeInto overlays the supplied fields on t and refreshes UpdatedAt.
// Omitted fields keep their current values. UpdatedAt never moves backwards,
// even if at precedes the stored timestamp.
func (e Entry) MergeInto(t *Todo, at time.Time) {
	if at.Before(t.UpdatedAt) {
		at = t.UpdatedAt
	}
	t.Update(
		deref(e.Title, t.Title),
		deref(e.Content, t.Content),
		deref(e.Done, t.Done),
		at,
	)
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
