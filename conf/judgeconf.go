package conf

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// JudgeConf holds judge pipeline tuning knobs. Every field has a
// sensible default so the file is optional in local development.
type JudgeConf struct {
	// number of comparator workers; 0 means hardware parallelism
	CompareWorkers int `toml:"compare_workers"`
	// per-case sandbox call timeout in milliseconds
	SandboxTimeoutMs int `toml:"sandbox_timeout_ms"`
}

func DefaultJudgeConf() JudgeConf {
	return JudgeConf{
		CompareWorkers:   0,
		SandboxTimeoutMs: 5000,
	}
}

// ReadJudgeConf loads judge tuning from the toml file at path.
// A missing file is not an error and yields the defaults.
func ReadJudgeConf(path string) (JudgeConf, error) {
	c := DefaultJudgeConf()
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read judge conf: %w", err)
	}
	if err := toml.Unmarshal(content, &c); err != nil {
		return c, fmt.Errorf("failed to parse judge conf: %w", err)
	}
	return c, nil
}

func (c JudgeConf) SandboxTimeout() time.Duration {
	return time.Duration(c.SandboxTimeoutMs) * time.Millisecond
}

func GetSandboxUrlFromEnv() string {
	url := os.Getenv("SANDBOX_URL")
	if url == "" {
		url = "http://localhost:2000"
	}
	return url
}
