package todo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *chi.Mux {
	h := NewHandler(NewService(NewMemoryRepository()))

	router := chi.NewRouter()
	router.Get("/todos", h.ListTodos)
	router.Post("/todos", h.CreateTodo)
	router.Put("/todos", h.UpdateTodo)
	router.Delete("/todos", h.DeleteTodo)

	return router
}

func doJSON(t *testing.T, router *chi.Mux, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, "/todos", reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateTodoHandler(t *testing.T) {
	router := setupTestRouter()

	rr := doJSON(t, router, http.MethodPost, `{"title": "Buy milk"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var created Todo
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	t.Run("malformed json", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, `{"title": "bad json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "invalid json body", errResp["error"])
	})

	t.Run("missing title", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "title is required", errResp["error"])
	})
}

func TestListTodosHandler(t *testing.T) {
	router := setupTestRouter()

	rr := doJSON(t, router, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String(), "empty store must encode as an empty array")

	doJSON(t, router, http.MethodPost, `{"title": "Item1"}`)
	doJSON(t, router, http.MethodPost, `{"title": "Item2"}`)

	rr = doJSON(t, router, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var todos []Todo
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&todos))
	assert.Len(t, todos, 2)
}

func TestUpdateTodoHandler(t *testing.T) {
	router := setupTestRouter()

	rr := doJSON(t, router, http.MethodPost, `{"title": "Water plants"}`)
	var created Todo
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))

	rr = doJSON(t, router, http.MethodPut, `{"id": "`+created.ID+`", "completed": true}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated Todo
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.True(t, updated.Completed)
	assert.Equal(t, "Water plants", updated.Title)

	t.Run("unknown id", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, `{"id": "no-such-id", "completed": true}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing completed", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, `{"id": "`+created.ID+`"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteTodoHandler(t *testing.T) {
	router := setupTestRouter()

	rr := doJSON(t, router, http.MethodPost, `{"title": "To delete"}`)
	var created Todo
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))

	rr = doJSON(t, router, http.MethodDelete, `{"id": "`+created.ID+`"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Deleted", resp["message"])
	assert.Equal(t, created.ID, resp["id"])

	rr = doJSON(t, router, http.MethodGet, "")
	assert.False(t, strings.Contains(rr.Body.String(), created.ID))

	t.Run("unknown id still reports deleted", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, `{"id": "never-existed"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Deleted", resp["message"])
		assert.Equal(t, "never-existed", resp["id"])
	})
}
