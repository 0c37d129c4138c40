package judge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoarena/backend/sandbox"
)

// fakeExec scripts engine responses per stdin value and counts
// how many execute calls were issued.
type fakeExec struct {
	mu      sync.Mutex
	calls   int
	results map[string]sandbox.ExecResult

	resolveErr error
	execErr    error
}

func (f *fakeExec) Execute(ctx context.Context, p sandbox.ExecParams) (sandbox.ExecResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.execErr != nil {
		return sandbox.ExecResult{}, f.execErr
	}
	res, ok := f.results[p.Stdin]
	if !ok {
		return sandbox.ExecResult{}, fmt.Errorf("no scripted result for stdin %q", p.Stdin)
	}
	return res, nil
}

func (f *fakeExec) ResolveRuntime(langID string, version string) (sandbox.Runtime, error) {
	if f.resolveErr != nil {
		return sandbox.Runtime{}, f.resolveErr
	}
	return sandbox.Runtime{Language: langID, Version: "3.12.0"}, nil
}

func (f *fakeExec) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCmp struct {
	err error
}

func (f *fakeCmp) Compare(ctx context.Context, output string, expected string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return output == expected, nil
}

func runOK(stdout string) sandbox.ExecResult {
	code := int64(0)
	return sandbox.ExecResult{Run: sandbox.PhaseResult{Stdout: stdout, Code: &code}}
}

func runExit(code int64, stdout string) sandbox.ExecResult {
	return sandbox.ExecResult{Run: sandbox.PhaseResult{Stdout: stdout, Code: &code}}
}

func runKilled() sandbox.ExecResult {
	sig := "SIGKILL"
	return sandbox.ExecResult{Run: sandbox.PhaseResult{Signal: &sig}}
}

func TestVerdictPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []CaseOutcome
		want     Verdict
	}{
		{
			name: "tle dominates re and wrong answers",
			outcomes: []CaseOutcome{
				{Status: StatusRunOK, Passed: false},
				{Status: StatusRE},
				{Status: StatusTLE},
			},
			want: VerdictTimeLimitExceeded,
		},
		{
			name: "re dominates wrong answers",
			outcomes: []CaseOutcome{
				{Status: StatusRunOK, Passed: true},
				{Status: StatusRE},
				{Status: StatusRunOK, Passed: false},
			},
			want: VerdictRuntimeError,
		},
		{
			name: "failed comparison yields wrong answer",
			outcomes: []CaseOutcome{
				{Status: StatusRunOK, Passed: true},
				{Status: StatusRunOK, Passed: false},
			},
			want: VerdictWrongAnswer,
		},
		{
			name: "all passed yields accepted",
			outcomes: []CaseOutcome{
				{Status: StatusRunOK, Passed: true},
				{Status: StatusRunOK, Passed: true},
			},
			want: VerdictAccepted,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, aggregateVerdict(tc.outcomes))
		})
	}
}

func TestJudgeAllAccepted(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runOK("one\n"),
		"2": runOK("two\n"),
		"3": runOK("three\n"),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	tests := []TestCase{
		{Input: "1", Answer: "one", IsSample: true},
		{Input: "2", Answer: "two"},
		{Input: "3", Answer: "three"},
	}

	summary, err := judger.Judge(context.Background(), "code", "python", "", tests)
	require.NoError(t, err)

	assert.Equal(t, VerdictAccepted, summary.Verdict)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.TotalPassed)
	assert.Equal(t, 3, exec.callCount())
}

func TestJudgeTimeoutDominates(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runOK("one"),
		"2": runKilled(),
		"3": runOK("three"),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	tests := []TestCase{
		{Input: "1", Answer: "one"},
		{Input: "2", Answer: "two"},
		{Input: "3", Answer: "three"},
	}

	summary, err := judger.Judge(context.Background(), "code", "python", "", tests)
	require.NoError(t, err)

	assert.Equal(t, VerdictTimeLimitExceeded, summary.Verdict)
	assert.Equal(t, 2, summary.TotalPassed)
}

func TestJudgeTimedOutCaseHasEmptyOutput(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runKilled(),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	summary, err := judger.Judge(context.Background(), "code", "python", "",
		[]TestCase{{Input: "1", Answer: "one", IsSample: true}})
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusTLE, summary.Results[0].Status)
	assert.Equal(t, "", summary.Results[0].Output)
	assert.False(t, summary.Results[0].Passed)
}

func TestJudgeRuntimeErrorKeepsTrimmedStdout(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runExit(1, "  partial output \n"),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	summary, err := judger.Judge(context.Background(), "code", "python", "",
		[]TestCase{{Input: "1", Answer: "one", IsSample: true}})
	require.NoError(t, err)

	assert.Equal(t, VerdictRuntimeError, summary.Verdict)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusRE, summary.Results[0].Status)
	assert.Equal(t, "partial output", summary.Results[0].Output)
	assert.False(t, summary.Results[0].Passed)
}

func TestJudgeCompileFailureClassifiedAsRuntimeError(t *testing.T) {
	compCode := int64(1)
	zero := int64(0)
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": {
			Run:     sandbox.PhaseResult{Code: &zero},
			Compile: &sandbox.PhaseResult{Stderr: "syntax error", Code: &compCode},
		},
	}}
	judger := NewJudger(exec, &fakeCmp{})

	summary, err := judger.Judge(context.Background(), "code", "cpp", "",
		[]TestCase{{Input: "1", Answer: "one"}})
	require.NoError(t, err)

	assert.Equal(t, VerdictRuntimeError, summary.Verdict)
}

func TestJudgeCompileKilledClassifiedAsTimeLimit(t *testing.T) {
	zero := int64(0)
	sig := "SIGKILL"
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": {
			Run:     sandbox.PhaseResult{Code: &zero},
			Compile: &sandbox.PhaseResult{Signal: &sig},
		},
	}}
	judger := NewJudger(exec, &fakeCmp{})

	summary, err := judger.Judge(context.Background(), "code", "cpp", "",
		[]TestCase{{Input: "1", Answer: "one", IsSample: true}})
	require.NoError(t, err)

	// a compile phase killed without an exit code is a kill like
	// any other: TLE, empty output, even if the engine reported a
	// clean run phase alongside it
	assert.Equal(t, VerdictTimeLimitExceeded, summary.Verdict)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusTLE, summary.Results[0].Status)
	assert.Equal(t, "", summary.Results[0].Output)
}

func TestJudgeFiltersHiddenCases(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runOK("a"), "2": runOK("b"), "3": runOK("c"),
		"4": runOK("d"), "5": runOK("e"),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	tests := []TestCase{
		{Input: "1", Answer: "a", IsSample: true},
		{Input: "2", Answer: "b"},
		{Input: "3", Answer: "c", IsSample: true},
		{Input: "4", Answer: "d"},
		{Input: "5", Answer: "e"},
	}

	summary, err := judger.Judge(context.Background(), "code", "python", "", tests)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	require.Len(t, summary.Results, 2)
	for _, res := range summary.Results {
		assert.True(t, res.IsSample)
	}
	// results keep the original submission order
	assert.Equal(t, "1", summary.Results[0].Input)
	assert.Equal(t, "3", summary.Results[1].Input)
}

func TestJudgeUnknownRuntimeFailsBeforeDispatch(t *testing.T) {
	exec := &fakeExec{resolveErr: sandbox.ErrRuntimeNotFound("brainfck")}
	judger := NewJudger(exec, &fakeCmp{})

	_, err := judger.Judge(context.Background(), "code", "brainfck", "",
		[]TestCase{{Input: "1", Answer: "one"}})
	require.Error(t, err)
	assert.Equal(t, 0, exec.callCount(), "no sandbox call may be issued")
}

func TestJudgeEngineTransportErrorFailsRun(t *testing.T) {
	exec := &fakeExec{execErr: errors.New("connection refused")}
	judger := NewJudger(exec, &fakeCmp{})

	_, err := judger.Judge(context.Background(), "code", "python", "",
		[]TestCase{{Input: "1", Answer: "one"}})
	require.Error(t, err)
}

func TestJudgeComparatorFailureFailsRun(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runOK("one"),
	}}
	judger := NewJudger(exec, &fakeCmp{err: errors.New("dispatch failed")})

	_, err := judger.Judge(context.Background(), "code", "python", "",
		[]TestCase{{Input: "1", Answer: "one"}})
	require.Error(t, err)
}

func TestJudgeCountConsistency(t *testing.T) {
	exec := &fakeExec{results: map[string]sandbox.ExecResult{
		"1": runOK("right"),
		"2": runOK("wrong"),
		"3": runOK("right"),
	}}
	judger := NewJudger(exec, &fakeCmp{})

	tests := []TestCase{
		{Input: "1", Answer: "right"},
		{Input: "2", Answer: "right"},
		{Input: "3", Answer: "right"},
	}

	summary, err := judger.Judge(context.Background(), "code", "python", "", tests)
	require.NoError(t, err)

	assert.Equal(t, VerdictWrongAnswer, summary.Verdict)
	assert.Equal(t, len(tests), summary.Total)
	assert.Equal(t, 2, summary.TotalPassed)
	assert.LessOrEqual(t, summary.TotalPassed, summary.Total)
}
