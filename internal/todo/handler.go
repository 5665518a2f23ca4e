package todo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manish-g0u74m/ServerlessTodo-app/pkg/utils"
)

// =============== Handler struct ==================

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GET /todos
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to list todos")
		return
	}

	utils.WriteJSON(w, http.StatusOK, todos)
}

// POST /todos
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var in CreateTodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	t, err := h.svc.CreateTodo(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			utils.WriteError(w, http.StatusBadRequest, "title is required")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to create todo")
		return
	}

	utils.WriteJSON(w, http.StatusOK, t)
}

// PUT /todos
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var in UpdateTodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	t, err := h.svc.SetCompleted(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			utils.WriteError(w, http.StatusBadRequest, "id and completed are required")
			return
		case errors.Is(err, ErrNotFound):
			utils.WriteError(w, http.StatusNotFound, "todo not found")
			return
		default:
			utils.WriteError(w, http.StatusInternalServerError, "failed to update todo")
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, t)
}

// DELETE /todos
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	var in DeleteTodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), in); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			utils.WriteError(w, http.StatusBadRequest, "id is required")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete todo")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Deleted",
		"id":      in.ID,
	})
}
