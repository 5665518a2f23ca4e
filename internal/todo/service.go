package todo

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// Service คือ business logic layer
type Service interface {
	ListTodos(ctx context.Context) ([]Todo, error)
	CreateTodo(ctx context.Context, in CreateTodoInput) (*Todo, error)
	SetCompleted(ctx context.Context, in UpdateTodoInput) (*Todo, error)
	DeleteTodo(ctx context.Context, in DeleteTodoInput) error
}

type service struct {
	repo TodoRepository
}

func NewService(repo TodoRepository) Service {
	return &service{repo: repo}
}

// ===== List =====

func (s *service) ListTodos(ctx context.Context) ([]Todo, error) {
	todos, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}

	// Always a JSON array, never null.
	if todos == nil {
		todos = []Todo{}
	}

	return todos, nil
}

// ===== Create =====

func (s *service) CreateTodo(ctx context.Context, in CreateTodoInput) (*Todo, error) {
	// title required
	if in.Title == "" {
		return nil, ErrInvalidInput
	}

	t := Todo{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Completed: false,
	}

	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}

	// Return the item exactly as written, not a re-read.
	return &t, nil
}

// ===== Update =====

func (s *service) SetCompleted(ctx context.Context, in UpdateTodoInput) (*Todo, error) {
	// id and completed required
	if in.ID == "" || in.Completed == nil {
		return nil, ErrInvalidInput
	}

	if err := s.repo.UpdateCompleted(ctx, in.ID, *in.Completed); err != nil {
		return nil, err
	}

	// Fresh read so the response reflects stored state.
	return s.repo.Get(ctx, in.ID)
}

// ===== Delete =====

func (s *service) DeleteTodo(ctx context.Context, in DeleteTodoInput) error {
	if in.ID == "" {
		return ErrInvalidInput
	}

	// No existence check: deleting an unknown id still reports success.
	return s.repo.Delete(ctx, in.ID)
}
