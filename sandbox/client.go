package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client talks to a Piston-compatible code execution engine over
// HTTP. It issues exactly one POST /api/v2/execute per Execute
// call with a fixed timeout. The runtime table is fetched once at
// construction and treated as read-mostly; runtimes installed on
// the engine afterwards are not visible until the process restarts.
type Client struct {
	logger *slog.Logger

	baseUrl string
	httpCl  *http.Client

	runtimes []Runtime
}

// NewClient fetches the engine's runtime table and returns a
// ready-to-use client. timeout bounds every execute call; zero
// means 5 seconds.
func NewClient(ctx context.Context, baseUrl string, timeout time.Duration) (*Client, error) {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		logger:  slog.Default().With("module", "sandbox"),
		baseUrl: baseUrl,
		httpCl:  &http.Client{Timeout: timeout},
	}
	runtimes, err := c.fetchRuntimes(ctx)
	if err != nil {
		return nil, ErrEngineUnavailable().SetDebug(err)
	}
	c.runtimes = runtimes
	c.logger.Info("loaded engine runtime table",
		"count", len(runtimes), "engine", baseUrl)
	return c, nil
}

// Runtimes returns the cached runtime table.
func (c *Client) Runtimes() []Runtime {
	return c.runtimes
}

// Execute runs one (code, language, stdin) triple on the engine.
// An unknown language fails fast with runtime_not_found before any
// network call. Transport failures are returned as errors for the
// caller to classify; the client itself never decides pass/fail.
func (c *Client) Execute(ctx context.Context, p ExecParams) (ExecResult, error) {
	rt, err := c.ResolveRuntime(p.LangID, p.Version)
	if err != nil {
		return ExecResult{}, err
	}

	reqBody := execRequest{
		Language: rt.Language,
		Version:  rt.Version,
		Files:    []execFile{{Name: "main", Content: p.Code}},
		Stdin:    p.Stdin,
		Args:     p.Args,
	}
	jsonReq, err := json.Marshal(reqBody)
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to marshal execute request: %w", err)
	}

	url := c.baseUrl + "/api/v2/execute"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url,
		bytes.NewReader(jsonReq))
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to create execute request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpCl.Do(httpReq)
	if err != nil {
		return ExecResult{}, fmt.Errorf("execute call to engine failed: %w", err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpRes.Body, 4096))
		return ExecResult{}, fmt.Errorf("engine returned status %d: %s",
			httpRes.StatusCode, string(body))
	}

	var res execResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return ExecResult{}, fmt.Errorf("failed to decode execute response: %w", err)
	}

	return ExecResult{
		Language: res.Language,
		Version:  res.Version,
		Run:      PhaseResult(res.Run),
		Compile:  (*PhaseResult)(res.Compile),
	}, nil
}

func (c *Client) fetchRuntimes(ctx context.Context) ([]Runtime, error) {
	url := c.baseUrl + "/api/v2/runtimes"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create runtimes request: %w", err)
	}

	httpRes, err := c.httpCl.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("runtimes call to engine failed: %w", err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("engine returned status %d for runtimes",
			httpRes.StatusCode)
	}

	var runtimes []Runtime
	if err := json.NewDecoder(httpRes.Body).Decode(&runtimes); err != nil {
		return nil, fmt.Errorf("failed to decode runtimes response: %w", err)
	}
	return runtimes, nil
}
