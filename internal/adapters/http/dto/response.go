// Package dto provides HTTP request/response data transfer objects and the
// {code, message} error body for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TimestampLayout renders timestamps as ISO-8601 UTC with millisecond
// precision, e.g. 2018-09-20T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Done:      t.Done,
		CreatedAt: t.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt: t.UpdatedAt.UTC().Format(TimestampLayout),
	}
}

// ToTodoListResponse converts todos to a JSON array body. An empty result
// encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}
