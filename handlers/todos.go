package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"todo-admin/models"
	"todo-admin/repository"

	"github.com/go-chi/chi/v5"
)

// TodoHandler handles all todo-related HTTP requests
type TodoHandler struct {
	repo   *repository.TodoRepository
	logger *slog.Logger
}

// NewTodoHandler creates a new handler
func NewTodoHandler(repo *repository.TodoRepository, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos handles GET /api/todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get todos", "error", err)
		// data:[] here means "unknown", not "empty"; success says which.
		writeEnvelope(w, h.logger, models.Envelope{Success: false, Data: []models.Todo{}})
		return
	}

	writeEnvelope(w, h.logger, models.Envelope{Success: true, Data: todos})
}

// CreateTodo handles POST /api/todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	content, err := contentText(req.Content)
	if errors.Is(err, errEmptyContent) {
		writeEnvelope(w, h.logger, failure(msgEmptyContent))
		return
	}
	if err != nil {
		writeEnvelope(w, h.logger, failure(msgBadContent))
		return
	}

	id, err := h.repo.Create(r.Context(), content)
	if err != nil {
		h.logger.Error("failed to create todo", "error", err)
		writeEnvelope(w, h.logger, failure(msgCreateFailed))
		return
	}

	h.logger.Info("todo created", "id", id)
	writeEnvelope(w, h.logger, models.Envelope{Success: true, ID: id})
}

// DeleteTodo handles DELETE /api/todos/{id}. Deleting an id that does not
// exist still succeeds.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete todo", "error", err, "id", id)
		writeEnvelope(w, h.logger, failure(msgDeleteFailed))
		return
	}

	h.logger.Info("todo deleted", "id", id)
	writeEnvelope(w, h.logger, models.Envelope{Success: true})
}
