package task

import (
	"context"
	"sync"
)

// InMemRepo is a thread-safe in-memory task store used in tests
// and local development.
type InMemRepo struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		tasks: make(map[string]Task),
	}
}

func (r *InMemRepo) Put(t Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ShortID] = t
}

func (r *InMemRepo) Get(ctx context.Context, shortID string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[shortID]
	if !ok {
		return Task{}, ErrTaskNotFound()
	}
	return t, nil
}

func (r *InMemRepo) List(ctx context.Context) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		res = append(res, t)
	}
	return res, nil
}
