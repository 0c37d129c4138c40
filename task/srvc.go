package task

import (
	"context"
	"log/slog"

	"github.com/algoarena/backend/judge"
)

// Repo abstracts task storage. Backed by postgres in production
// and by the in-mem repo in tests and local development.
type Repo interface {
	Get(ctx context.Context, shortID string) (Task, error)
	List(ctx context.Context) ([]Task, error)
}

type TaskSrvc struct {
	logger *slog.Logger
	repo   Repo
}

func NewTaskSrvc(repo Repo) *TaskSrvc {
	return &TaskSrvc{
		logger: slog.Default().With("module", "task"),
		repo:   repo,
	}
}

func (s *TaskSrvc) GetTask(ctx context.Context, shortID string) (Task, error) {
	return s.repo.Get(ctx, shortID)
}

func (s *TaskSrvc) ListTasks(ctx context.Context) ([]Task, error) {
	return s.repo.List(ctx)
}

// ListTestCases returns the task's test cases. Interactive "run"
// requests pass includeHidden = false and only see sample cases;
// final submissions pass true and get the full set.
func (s *TaskSrvc) ListTestCases(
	ctx context.Context,
	shortID string,
	includeHidden bool,
) ([]judge.TestCase, error) {
	t, err := s.repo.Get(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if includeHidden {
		return t.Tests, nil
	}
	samples := []judge.TestCase{}
	for _, tc := range t.Tests {
		if tc.IsSample {
			samples = append(samples, tc)
		}
	}
	return samples, nil
}
