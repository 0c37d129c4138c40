package task

import (
	"context"
	"errors"
	"fmt"

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

func (r *pgRepo) Get(ctx context.Context, shortID string) (Task, error) {
	taskQuery := `
		SELECT short_id, full_name
		FROM tasks
		WHERE short_id = $1
	`
	var t Task
	err := r.pool.QueryRow(ctx, taskQuery, shortID).Scan(
		&t.ShortID,
		&t.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound().SetDebug(err)
		}
		return Task{}, fmt.Errorf("failed to query task: %w", err)
	}

	tests, err := r.listTests(ctx, shortID)
	if err != nil {
		return Task{}, err
	}
	t.Tests = tests

	return t, nil
}

func (r *pgRepo) listTests(ctx context.Context, shortID string) ([]judge.TestCase, error) {
	testsQuery := `
		SELECT input, answer, is_sample
		FROM task_tests
		WHERE task_short_id = $1
		ORDER BY ord
	`
	rows, err := r.pool.Query(ctx, testsQuery, shortID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task tests: %w", err)
	}
	defer rows.Close()

	var tests []judge.TestCase
	for rows.Next() {
		var tc judge.TestCase
		if err := rows.Scan(&tc.Input, &tc.Answer, &tc.IsSample); err != nil {
			return nil, fmt.Errorf("failed to scan task test: %w", err)
		}
		tests = append(tests, tc)
	}
	return tests, rows.Err()
}

func (r *pgRepo) List(ctx context.Context) ([]Task, error) {
	tasksQuery := `
		SELECT short_id, full_name
		FROM tasks
		ORDER BY short_id
	`
	rows, err := r.pool.Query(ctx, tasksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ShortID, &t.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
