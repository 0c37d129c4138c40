package judge

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/algoarena/backend/sandbox"
)

// Executor runs one code+stdin triple on the execution engine.
// Implemented by sandbox.Client; faked in tests.
type Executor interface {
	Execute(ctx context.Context, p sandbox.ExecParams) (sandbox.ExecResult, error)
	ResolveRuntime(langID string, version string) (sandbox.Runtime, error)
}

// Comparator decides whether produced output matches expected
// output. Implemented by compare.Pool; faked in tests.
type Comparator interface {
	Compare(ctx context.Context, output string, expected string) (bool, error)
}

// Judger fans test cases out to the execution engine, classifies
// each outcome, delegates output comparison to the comparator
// pool and aggregates a single verdict. Each Judge call is
// independent; the judger holds no per-run state.
type Judger struct {
	logger *slog.Logger

	exec Executor
	cmp  Comparator
}

func NewJudger(exec Executor, cmp Comparator) *Judger {
	return &Judger{
		logger: slog.Default().With("module", "judge"),
		exec:   exec,
		cmp:    cmp,
	}
}

// Judge runs code against every test case and returns the
// aggregate summary. The language is validated up front so a bad
// runtime fails the whole run before any sandbox call is made.
// Sandbox calls are issued eagerly per case; overall throughput is
// gated by the comparator pool's fixed worker count. Hard failures
// (engine transport errors, comparator dispatch failures after
// retry) abort the whole run with an error and no partial summary.
func (j *Judger) Judge(
	ctx context.Context,
	code string,
	langID string,
	version string,
	tests []TestCase,
) (Summary, error) {
	if _, err := j.exec.ResolveRuntime(langID, version); err != nil {
		return Summary{}, err
	}

	// indexed by original position so the final results order is
	// deterministic regardless of completion order
	outcomes := make([]CaseOutcome, len(tests))

	g, gctx := errgroup.WithContext(ctx)
	for i, tc := range tests {
		i, tc := i, tc
		g.Go(func() error {
			outcome, err := j.evaluateCase(gctx, code, langID, version, tc)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(outcomes)
	j.logger.Info("judged submission",
		"lang", langID,
		"tests", summary.Total,
		"passed", summary.TotalPassed,
		"verdict", summary.Verdict,
	)
	return summary, nil
}

// summarize computes the verdict once, over the complete outcome
// set, and filters per-case detail down to sample cases.
func summarize(outcomes []CaseOutcome) Summary {
	totalPassed := 0
	for _, o := range outcomes {
		if o.Passed {
			totalPassed++
		}
	}

	results := []CaseOutcome{}
	for _, o := range outcomes {
		if o.IsSample {
			results = append(results, o)
		}
	}

	return Summary{
		Verdict:     aggregateVerdict(outcomes),
		Total:       len(outcomes),
		TotalPassed: totalPassed,
		Results:     results,
	}
}

// aggregateVerdict applies the strict precedence chain: a single
// timeout anywhere dominates, then runtime errors, then wrong
// answers.
func aggregateVerdict(outcomes []CaseOutcome) Verdict {
	for _, o := range outcomes {
		if o.Status == StatusTLE {
			return VerdictTimeLimitExceeded
		}
	}
	for _, o := range outcomes {
		if o.Status == StatusRE {
			return VerdictRuntimeError
		}
	}
	for _, o := range outcomes {
		if !o.Passed {
			return VerdictWrongAnswer
		}
	}
	return VerdictAccepted
}
