package judge

import (
	"context"
	"strings"

	"github.com/algoarena/backend/sandbox"
)

// evaluateCase runs one test case and classifies the result:
//   - no exit code (process killed on the engine's time limit)
//     is a TLE; output is forced empty and nothing is compared;
//   - a non-zero exit code is an RE; trimmed stdout is kept for
//     display but nothing is compared;
//   - exit code zero runs the comparator over trimmed stdout and
//     the expected answer; the per-case status stays run_ok and
//     the comparison verdict travels in Passed alone.
//
// TLE and RE are terminal classifications for the case, not
// transient errors; they are never retried. An engine transport
// failure is returned as an error and fails the whole run.
func (j *Judger) evaluateCase(
	ctx context.Context,
	code string,
	langID string,
	version string,
	tc TestCase,
) (CaseOutcome, error) {
	res, err := j.exec.Execute(ctx, sandbox.ExecParams{
		Code:    code,
		LangID:  langID,
		Version: version,
		Stdin:   tc.Input,
	})
	if err != nil {
		return CaseOutcome{}, err
	}

	run := res.Run
	// an engine with a compile phase reports compiler failures
	// there; the program never ran, so an unhealthy compile phase
	// is classified in place of the run phase. A killed compile
	// (no exit code) is a TLE like any other kill, a non-zero
	// compile exit an RE.
	if res.Compile != nil && (res.Compile.Code == nil || *res.Compile.Code != 0) {
		run = *res.Compile
	}

	outcome := CaseOutcome{
		Input:    tc.Input,
		Expected: tc.Answer,
		IsSample: tc.IsSample,
	}

	switch {
	case run.Code == nil:
		outcome.Status = StatusTLE
		outcome.Output = ""
		outcome.Passed = false
	case *run.Code != 0:
		outcome.Status = StatusRE
		outcome.Output = strings.TrimSpace(run.Stdout)
		outcome.Passed = false
	default:
		outcome.Status = StatusRunOK
		outcome.Output = strings.TrimSpace(run.Stdout)
		passed, err := j.cmp.Compare(ctx, outcome.Output, tc.Answer)
		if err != nil {
			return CaseOutcome{}, err
		}
		outcome.Passed = passed
	}

	return outcome, nil
}
