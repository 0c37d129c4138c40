package subm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/algoarena/backend/judge"
	"github.com/algoarena/backend/logger"
	"github.com/algoarena/backend/task"
)

const maxSubmLengthKB = 64

// SubmSrvc orchestrates submissions: it persists a pending row,
// runs the judging pipeline over the full test case set and
// records the final status exactly once.
type SubmSrvc struct {
	logger *slog.Logger

	judger   *judge.Judger
	taskSrvc *task.TaskSrvc
	repo     Repo
}

func NewSubmSrvc(judger *judge.Judger, taskSrvc *task.TaskSrvc, repo Repo) *SubmSrvc {
	return &SubmSrvc{
		logger:   slog.Default().With("module", "subm"),
		judger:   judger,
		taskSrvc: taskSrvc,
		repo:     repo,
	}
}

type SubmitParams struct {
	TaskID     string
	AuthorUUID uuid.UUID
	LangID     string
	Version    string
	Content    string
}

// Submit persists a pending submission, judges it against every
// test case of the task (hidden cases included) and updates the
// row once with the final status and summary.
//
// If judging fails partway the row stays pending; there is no
// compensating transition and the submission has to be re-judged
// manually. Whether the original system intended that is unclear,
// so the behavior is kept rather than silently changed.
func (s *SubmSrvc) Submit(ctx context.Context, p SubmitParams) (Submission, error) {
	if len(p.Content) > maxSubmLengthKB*1024 {
		return Submission{}, ErrSubmissionTooLong(maxSubmLengthKB)
	}

	tests, err := s.taskSrvc.ListTestCases(ctx, p.TaskID, true)
	if err != nil {
		return Submission{}, err
	}

	submUuid, err := uuid.NewV7()
	if err != nil {
		return Submission{}, err
	}

	ctx = logger.WithSubmUuid(ctx, submUuid.String())
	log := logger.FromContext(ctx)

	subm := Submission{
		UUID:       submUuid,
		TaskID:     p.TaskID,
		AuthorUUID: p.AuthorUUID,
		LangID:     p.LangID,
		Content:    p.Content,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Store(ctx, subm); err != nil {
		return Submission{}, err
	}

	summary, err := s.judger.Judge(ctx, p.Content, p.LangID, p.Version, tests)
	if err != nil {
		log.Error("judging failed, submission left pending", "error", err)
		return Submission{}, err
	}

	subm.Status = statusFromVerdict(summary.Verdict)
	subm.Summary = &summary
	if err := s.repo.SetJudged(ctx, subm); err != nil {
		return Submission{}, err
	}

	log.Info("submission judged",
		"task", subm.TaskID,
		"status", subm.Status,
	)
	return subm, nil
}

type RunParams struct {
	TaskID  string
	LangID  string
	Version string
	Content string
}

// Run judges code against the task's sample cases only. Nothing
// is persisted; this backs the interactive "run" button.
func (s *SubmSrvc) Run(ctx context.Context, p RunParams) (judge.Summary, error) {
	if len(p.Content) > maxSubmLengthKB*1024 {
		return judge.Summary{}, ErrSubmissionTooLong(maxSubmLengthKB)
	}

	tests, err := s.taskSrvc.ListTestCases(ctx, p.TaskID, false)
	if err != nil {
		return judge.Summary{}, err
	}

	summary, err := s.judger.Judge(ctx, p.Content, p.LangID, p.Version, tests)
	if err != nil {
		return judge.Summary{}, err
	}

	s.logger.Debug("run request judged",
		"task", p.TaskID,
		"verdict", summary.Verdict,
	)
	return summary, nil
}

func (s *SubmSrvc) GetSubm(ctx context.Context, id uuid.UUID) (Submission, error) {
	return s.repo.Get(ctx, id)
}

func (s *SubmSrvc) ListSubms(ctx context.Context, limit int, offset int) ([]Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.repo.List(ctx, limit, offset)
}
