package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoHandler handles HTTP requests for the todo collection.
type TodoHandler struct {
	repo ports.TodoRepository
}

// NewTodoHandler creates a new TodoHandler with the given repository port.
func NewTodoHandler(repo ports.TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

// SearchTodos handles GET /todos.
func (h *TodoHandler) SearchTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParseSearchQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.repo.Search(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.GetByID(r.Context(), todoID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeJSONBody(w, r)
	if !ok {
		return
	}

	entry, err := dto.ParseCreateRequest(doc)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.repo.Create(r.Context(), entry)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PUT /todos/{id}. Fields omitted from the body keep
// their stored values.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeJSONBody(w, r)
	if !ok {
		return
	}

	entry, err := dto.ParseUpdateRequest(doc)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id := todoID(r)
	if _, err := h.repo.Update(r.Context(), id, entry); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.respondWithTodo(w, r, id)
}

// CompleteTodo handles POST /todos/{id}/complete.
func (h *TodoHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	id := todoID(r)
	if _, err := h.repo.Complete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.respondWithTodo(w, r, id)
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), todoID(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondWithTodo re-reads the todo after a mutation and writes it with 200.
func (h *TodoHandler) respondWithTodo(w http.ResponseWriter, r *http.Request, id string) {
	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}
