package sandbox

// Runtime is one installed language runtime as reported by the
// execution engine. The table is fetched once at startup.
type Runtime struct {
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Aliases  []string `json:"aliases"`
}

type execFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type execRequest struct {
	Language string     `json:"language"`
	Version  string     `json:"version"`
	Files    []execFile `json:"files"`
	Stdin    string     `json:"stdin"`
	Args     []string   `json:"args"`
}

type phaseResponse struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Output string  `json:"output"`
	Code   *int64  `json:"code"`
	Signal *string `json:"signal"`
}

type execResponse struct {
	Language string         `json:"language"`
	Version  string         `json:"version"`
	Run      phaseResponse  `json:"run"`
	Compile  *phaseResponse `json:"compile"`
}

// PhaseResult is the normalized outcome of one engine phase
// (compile or run). Code is nil when the process was killed
// before exiting, e.g. on the engine's own time limit.
type PhaseResult struct {
	Stdout string
	Stderr string
	Output string
	Code   *int64
	Signal *string
}

// ExecResult is the normalized result of one Execute call.
type ExecResult struct {
	Language string
	Version  string
	Run      PhaseResult
	Compile  *PhaseResult
}

// ExecParams describes one (code, language, stdin) triple to run.
// Version is optional; empty selects whatever single version the
// engine has installed for the language.
type ExecParams struct {
	Code    string
	LangID  string
	Version string
	Stdin   string
	Args    []string
}
