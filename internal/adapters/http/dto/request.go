package dto

import (
	"net/url"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Query parameter names accepted by GET /todos.
const (
	QueryKeyword = "q"
	QueryStatus  = "status"
)

// ParseCreateRequest validates a decoded JSON document against the creation
// schema and converts it into an entry. Unknown properties are ignored.
// A missing or empty title is left for the repository to reject.
func ParseCreateRequest(doc any) (todo.Entry, error) {
	return parseEntry(createSchema, doc)
}

// ParseUpdateRequest validates a decoded JSON document against the update
// schema. An explicit null or empty title is rejected here.
func ParseUpdateRequest(doc any) (todo.Entry, error) {
	return parseEntry(updateSchema, doc)
}

func parseEntry(schema *jsonschema.Schema, doc any) (todo.Entry, error) {
	if err := validateSchema(schema, doc); err != nil {
		return todo.Entry{}, err
	}
	fields, ok := doc.(map[string]any)
	if !ok {
		return todo.Entry{}, &domain.ValidationError{
			Fields: map[string]string{"body": "must be a JSON object"},
		}
	}
	return todo.EntryFromFields(fields), nil
}

// ParseSearchQuery converts the GET /todos query string into a filter.
func ParseSearchQuery(q url.Values) (todo.Filter, error) {
	done, err := todo.ParseStatus(q.Get(QueryStatus))
	if err != nil {
		return todo.Filter{}, err
	}
	return todo.Filter{
		Keyword: q.Get(QueryKeyword),
		Done:    done,
	}, nil
}
