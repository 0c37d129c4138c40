package subm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/algoarena/backend/judge"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// Store inserts a new pending submission row.
func (r *pgRepo) Store(ctx context.Context, s Submission) error {
	insertQuery := `
		INSERT INTO submissions (
			uuid, task_shortid, author_uuid, lang_shortid, content, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		s.UUID,
		s.TaskID,
		s.AuthorUUID,
		s.LangID,
		s.Content,
		string(s.Status),
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// SetJudged writes the final status and the judging summary.
func (r *pgRepo) SetJudged(ctx context.Context, s Submission) error {
	var summaryJson []byte
	if s.Summary != nil {
		var err error
		summaryJson, err = json.Marshal(s.Summary)
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
	}
	updateQuery := `
		UPDATE submissions
		SET status = $1, summary = $2
		WHERE uuid = $3
	`
	_, err := r.pool.Exec(ctx, updateQuery, string(s.Status), summaryJson, s.UUID)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

func (r *pgRepo) Get(ctx context.Context, id uuid.UUID) (Submission, error) {
	submQuery := `
		SELECT uuid, task_shortid, author_uuid, lang_shortid, content, status, summary, created_at
		FROM submissions
		WHERE uuid = $1
	`
	s, err := scanSubm(r.pool.QueryRow(ctx, submQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, ErrSubmissionNotFound().SetDebug(err)
		}
		return Submission{}, fmt.Errorf("failed to query submission: %w", err)
	}
	return s, nil
}

func (r *pgRepo) List(ctx context.Context, limit int, offset int) ([]Submission, error) {
	submsQuery := `
		SELECT uuid, task_shortid, author_uuid, lang_shortid, content, status, summary, created_at
		FROM submissions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, submsQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		s, err := scanSubm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subms = append(subms, s)
	}
	return subms, rows.Err()
}

func scanSubm(row pgx.Row) (Submission, error) {
	var s Submission
	var status string
	var summaryJson []byte
	err := row.Scan(
		&s.UUID,
		&s.TaskID,
		&s.AuthorUUID,
		&s.LangID,
		&s.Content,
		&status,
		&summaryJson,
		&s.CreatedAt,
	)
	if err != nil {
		return Submission{}, err
	}
	s.Status = Status(status)
	if len(summaryJson) > 0 {
		var summary judge.Summary
		if err := json.Unmarshal(summaryJson, &summary); err != nil {
			return Submission{}, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		s.Summary = &summary
	}
	return s, nil
}
