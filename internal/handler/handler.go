// Package handler adapts the todo service to a Lambda Function URL event.
// One invocation performs at most one store operation.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/manish-g0u74m/ServerlessTodo-app/internal/todo"
)

// Every response carries these, including error responses, so browsers can
// read them cross-origin.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "OPTIONS,GET,POST,PUT,DELETE",
	"Access-Control-Allow-Headers": "Content-Type",
}

type Handler struct {
	svc todo.Service
}

func NewHandler(svc todo.Service) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches on the HTTP method and maps the result to a JSON
// response envelope. It never returns a non-nil error: failures become
// structured error responses so the caller always sees the CORS headers.
func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	switch req.RequestContext.HTTP.Method {
	case http.MethodOptions:
		return respond(http.StatusOK, map[string]string{"message": "CORS preflight OK"})
	case http.MethodGet:
		return h.list(ctx)
	case http.MethodPost:
		return h.create(ctx, req)
	case http.MethodPut:
		return h.update(ctx, req)
	case http.MethodDelete:
		return h.delete(ctx, req)
	default:
		return respond(http.StatusBadRequest, errorBody("Unsupported method"))
	}
}

func (h *Handler) list(ctx context.Context) (events.LambdaFunctionURLResponse, error) {
	todos, err := h.svc.ListTodos(ctx)
	if err != nil {
		return serverError(ctx, "list todos", err)
	}

	return respond(http.StatusOK, todos)
}

func (h *Handler) create(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	var in todo.CreateTodoInput
	if err := parseBody(req, &in); err != nil {
		return respond(http.StatusBadRequest, errorBody("invalid json body"))
	}

	t, err := h.svc.CreateTodo(ctx, in)
	if err != nil {
		if errors.Is(err, todo.ErrInvalidInput) {
			return respond(http.StatusBadRequest, errorBody("title is required"))
		}
		return serverError(ctx, "create todo", err)
	}

	return respond(http.StatusOK, t)
}

func (h *Handler) update(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	var in todo.UpdateTodoInput
	if err := parseBody(req, &in); err != nil {
		return respond(http.StatusBadRequest, errorBody("invalid json body"))
	}

	t, err := h.svc.SetCompleted(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, todo.ErrInvalidInput):
			return respond(http.StatusBadRequest, errorBody("id and completed are required"))
		case errors.Is(err, todo.ErrNotFound):
			return respond(http.StatusNotFound, errorBody("todo not found"))
		default:
			return serverError(ctx, "update todo", err)
		}
	}

	return respond(http.StatusOK, t)
}

func (h *Handler) delete(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	var in todo.DeleteTodoInput
	if err := parseBody(req, &in); err != nil {
		return respond(http.StatusBadRequest, errorBody("invalid json body"))
	}

	if err := h.svc.DeleteTodo(ctx, in); err != nil {
		if errors.Is(err, todo.ErrInvalidInput) {
			return respond(http.StatusBadRequest, errorBody("id is required"))
		}
		return serverError(ctx, "delete todo", err)
	}

	return respond(http.StatusOK, map[string]string{
		"message": "Deleted",
		"id":      in.ID,
	})
}

// parseBody decodes the request body into v. Function URLs deliver binary
// bodies base64-encoded, so decode that first when flagged.
func parseBody(req events.LambdaFunctionURLRequest, v any) error {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return err
		}
		body = decoded
	}

	return json.Unmarshal(body, v)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func serverError(ctx context.Context, op string, err error) (events.LambdaFunctionURLResponse, error) {
	slog.ErrorContext(ctx, "store operation failed", "op", op, "error", err)
	return respond(http.StatusInternalServerError, errorBody("internal error"))
}

func respond(status int, body any) (events.LambdaFunctionURLResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    responseHeaders(),
			Body:       `{"error":"failed to encode response"}`,
		}, nil
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    responseHeaders(),
		Body:       string(b),
	}, nil
}

func responseHeaders() map[string]string {
	h := make(map[string]string, len(corsHeaders)+1)
	for k, v := range corsHeaders {
		h[k] = v
	}
	h["Content-Type"] = "application/json"
	return h
}
