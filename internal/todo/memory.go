package todo

import (
	"context"
	"sync"
)

// MemoryRepo is a map-backed TodoRepository. It backs the test suite and
// the local API server when no DynamoDB table is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Todo
}

func NewMemoryRepository() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Todo)}
}

func (r *MemoryRepo) Scan(_ context.Context) ([]Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]Todo, 0, len(r.items))
	for _, t := range r.items {
		todos = append(todos, t)
	}
	return todos, nil
}

func (r *MemoryRepo) Put(_ context.Context, t Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (*Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *MemoryRepo) UpdateCompleted(_ context.Context, id string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	t.Completed = completed
	r.items[id] = t
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
