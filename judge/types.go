package judge

// TestCase is one (input, expected output) pair of a task. Sample
// cases are visible to users; hidden cases are not. The list is
// read-only input to the judger, owned by the task service.
type TestCase struct {
	Input    string `json:"input"`
	Answer   string `json:"answer"`
	IsSample bool   `json:"is_sample"`
}

// CaseStatus classifies the execution phase of one test case.
// It deliberately has only three values: verdict aggregation only
// needs to tell execution failures apart from comparison failures,
// and the comparison result travels separately in Passed.
type CaseStatus string

const (
	StatusRunOK CaseStatus = "run_ok"
	StatusTLE   CaseStatus = "time_limit_exceeded"
	StatusRE    CaseStatus = "runtime_error"
)

// CaseOutcome is the result of running one test case. Created once
// per case per judging run, never mutated after creation. Passed
// is only meaningful when Status is StatusRunOK; execution
// failures always carry Passed = false.
type CaseOutcome struct {
	Input    string     `json:"input"`
	Output   string     `json:"output"`
	Expected string     `json:"expected"`
	IsSample bool       `json:"is_sample"`
	Status   CaseStatus `json:"status"`
	Passed   bool       `json:"passed"`
}

// Verdict is the single aggregate outcome label of a judging run.
type Verdict string

const (
	VerdictAccepted          Verdict = "accepted"
	VerdictWrongAnswer       Verdict = "wrong_answer"
	VerdictTimeLimitExceeded Verdict = "time_limit_exceeded"
	VerdictRuntimeError      Verdict = "runtime_error"
)

// Summary is the terminal, immutable output of one judging run.
// Results only ever contains sample cases so that hidden expected
// outputs never leak to the caller, no matter how many cases ran.
type Summary struct {
	Verdict     Verdict       `json:"verdict"`
	Total       int           `json:"total"`
	TotalPassed int           `json:"total_passed"`
	Results     []CaseOutcome `json:"results"`
}
