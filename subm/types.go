package subm

import (
	"time"

	"github.com/google/uuid"

	"github.com/algoarena/backend/judge"
)

// Status is the persisted state of a submission. A submission is
// written once as pending and updated exactly once with the final
// status after the full (hidden cases included) judging run.
type Status string

const (
	StatusPending           Status = "pending"
	StatusAccepted          Status = "accepted"
	StatusWrongAnswer       Status = "wrong_answer"
	StatusTimeLimitExceeded Status = "time_limit_exceeded"
	StatusRuntimeError      Status = "runtime_error"
	// reserved for engines that report a separate compile phase;
	// the current engine folds compiler failures into runtime_error
	StatusCompilationError Status = "compilation_error"
)

type Submission struct {
	UUID       uuid.UUID `json:"uuid"`
	TaskID     string    `json:"task_id"`
	AuthorUUID uuid.UUID `json:"author_uuid"`
	LangID     string    `json:"lang_id"`
	Content    string    `json:"content"`

	Status  Status         `json:"status"`
	Summary *judge.Summary `json:"summary,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func statusFromVerdict(v judge.Verdict) Status {
	switch v {
	case judge.VerdictAccepted:
		return StatusAccepted
	case judge.VerdictWrongAnswer:
		return StatusWrongAnswer
	case judge.VerdictTimeLimitExceeded:
		return StatusTimeLimitExceeded
	case judge.VerdictRuntimeError:
		return StatusRuntimeError
	}
	return StatusPending
}
