package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoarena/backend/judge"
	"github.com/algoarena/backend/task"
)

func TestListTestCasesFiltersHidden(t *testing.T) {
	repo := task.NewInMemRepo()
	repo.Put(task.Task{
		ShortID:  "sum",
		FullName: "A+B",
		Tests: []judge.TestCase{
			{Input: "1 2", Answer: "3", IsSample: true},
			{Input: "4 5", Answer: "9"},
			{Input: "6 7", Answer: "13"},
		},
	})
	srvc := task.NewTaskSrvc(repo)

	samples, err := srvc.ListTestCases(context.Background(), "sum", false)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.True(t, samples[0].IsSample)

	all, err := srvc.ListTestCases(context.Background(), "sum", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetUnknownTask(t *testing.T) {
	srvc := task.NewTaskSrvc(task.NewInMemRepo())

	_, err := srvc.ListTestCases(context.Background(), "nope", true)
	require.Error(t, err)
}
