package todo

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Query values accepted for the status filter.
const (
	StatusDone   = "done"
	StatusUndone = "undone"
)

// Filter holds optional search criteria.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	// Keyword is matched as a case-sensitive literal substring of the
	// title or the content.
	Keyword string
	Done    *bool
}

// Matches reports whether t satisfies every criterion set on the filter.
func (f Filter) Matches(t *Todo) bool {
	if f.Keyword != "" &&
		!strings.Contains(t.Title, f.Keyword) &&
		!strings.Contains(t.Content, f.Keyword) {
		return false
	}
	if f.Done != nil && t.Done != *f.Done {
		return false
	}
	return true
}

// ParseStatus converts the status query value into a done filter.
// An empty value means no filter.
func ParseStatus(status string) (*bool, error) {
	switch status {
	case "":
		return nil, nil
	case StatusDone:
		done := true
		return &done, nil
	case StatusUndone:
		done := false
		return &done, nil
	default:
		return nil, &domain.ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("must be one of: done, undone; got %q", status)},
		}
	}
}
