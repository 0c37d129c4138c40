package subm

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemRepo is a thread-safe in-memory submission store used in
// tests and local development.
type InMemRepo struct {
	mu    sync.RWMutex
	subms map[uuid.UUID]Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		subms: make(map[uuid.UUID]Submission),
	}
}

func (r *InMemRepo) Store(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[s.UUID] = s
	return nil
}

func (r *InMemRepo) SetJudged(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subms[s.UUID]; !ok {
		return ErrSubmissionNotFound()
	}
	r.subms[s.UUID] = s
	return nil
}

func (r *InMemRepo) Get(ctx context.Context, id uuid.UUID) (Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subms[id]
	if !ok {
		return Submission{}, ErrSubmissionNotFound()
	}
	return s, nil
}

func (r *InMemRepo) List(ctx context.Context, limit int, offset int) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Submission, 0, len(r.subms))
	for _, s := range r.subms {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []Submission{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
