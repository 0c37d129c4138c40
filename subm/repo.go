package subm

import (
	"context"

	"github.com/google/uuid"
)

// Repo abstracts submission storage.
type Repo interface {
	Store(ctx context.Context, s Submission) error
	// SetJudged records the final status and summary of a
	// submission; the single pending -> terminal transition.
	SetJudged(ctx context.Context, s Submission) error
	Get(ctx context.Context, id uuid.UUID) (Submission, error)
	List(ctx context.Context, limit int, offset int) ([]Submission, error)
}
