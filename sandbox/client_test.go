package sandbox_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoarena/backend/sandbox"
	"github.com/algoarena/backend/srvcerror"
)

// fakeEngine is a minimal Piston-compatible engine for tests.
type fakeEngine struct {
	execCalls atomic.Int64
	respond   func(req map[string]any) map[string]any
}

func (f *fakeEngine) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/runtimes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"language": "python", "version": "3.12.0", "aliases": []string{"py", "python3"}},
			{"language": "go", "version": "1.22.0", "aliases": []string{"golang"}},
		})
	})
	mux.HandleFunc("/api/v2/execute", func(w http.ResponseWriter, r *http.Request) {
		f.execCalls.Add(1)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(f.respond(req))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func echoEngine() *fakeEngine {
	return &fakeEngine{respond: func(req map[string]any) map[string]any {
		return map[string]any{
			"language": req["language"],
			"version":  req["version"],
			"run": map[string]any{
				"stdout": req["stdin"],
				"stderr": "",
				"output": req["stdin"],
				"code":   0,
				"signal": nil,
			},
		}
	}}
}

func TestExecuteEchoes(t *testing.T) {
	engine := echoEngine()
	srv := engine.start(t)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	res, err := client.Execute(context.Background(), sandbox.ExecParams{
		Code:   "print(input())",
		LangID: "python",
		Stdin:  "hello\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello\n", res.Run.Stdout)
	require.NotNil(t, res.Run.Code)
	assert.Equal(t, int64(0), *res.Run.Code)
	assert.Equal(t, int64(1), engine.execCalls.Load())
}

func TestResolveRuntimeByAliasCaseInsensitive(t *testing.T) {
	srv := echoEngine().start(t)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	for _, id := range []string{"python", "PYTHON", "py", "Python3", "GOLANG", "Go"} {
		_, err := client.ResolveRuntime(id, "")
		assert.NoError(t, err, "id %q should resolve", id)
	}
}

func TestResolveRuntimeVersionMismatch(t *testing.T) {
	srv := echoEngine().start(t)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	rt, err := client.ResolveRuntime("python", "3.12.0")
	require.NoError(t, err)
	assert.Equal(t, "python", rt.Language)

	_, err = client.ResolveRuntime("python", "2.7.0")
	require.Error(t, err)
}

func TestUnknownRuntimeFailsWithoutNetworkCall(t *testing.T) {
	engine := echoEngine()
	srv := engine.start(t)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), sandbox.ExecParams{
		Code:   "++++",
		LangID: "brainfck",
	})
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, sandbox.ErrCodeRuntimeNotFound, srvcErr.ErrorCode())
	assert.Equal(t, int64(0), engine.execCalls.Load(), "no execute call may be issued")
}

func TestKilledProcessHasNilExitCode(t *testing.T) {
	engine := &fakeEngine{respond: func(req map[string]any) map[string]any {
		return map[string]any{
			"language": "python",
			"version":  "3.12.0",
			"run": map[string]any{
				"stdout": "",
				"stderr": "",
				"output": "",
				"code":   nil,
				"signal": "SIGKILL",
			},
		}
	}}
	srv := engine.start(t)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	res, err := client.Execute(context.Background(), sandbox.ExecParams{
		Code:   "while True: pass",
		LangID: "python",
	})
	require.NoError(t, err)

	assert.Nil(t, res.Run.Code)
	require.NotNil(t, res.Run.Signal)
	assert.Equal(t, "SIGKILL", *res.Run.Signal)
}

func TestEngineErrorStatusSurfacesAsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/runtimes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"language": "python", "version": "3.12.0", "aliases": []string{}},
		})
	})
	mux.HandleFunc("/api/v2/execute", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := sandbox.NewClient(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), sandbox.ExecParams{
		Code:   "print(1)",
		LangID: "python",
	})
	require.Error(t, err)
}

func TestUnreachableEngineFailsConstruction(t *testing.T) {
	_, err := sandbox.NewClient(context.Background(), "http://127.0.0.1:1", 0)
	require.Error(t, err)
}
