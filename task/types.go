package task

import (
	"github.com/algoarena/backend/judge"
)

// Task is a problem statement with its test cases. Only the
// fields the judging pipeline reads are modeled here.
type Task struct {
	ShortID  string `json:"short_id"`
	FullName string `json:"full_name"`

	Tests []judge.TestCase `json:"tests"`
}
