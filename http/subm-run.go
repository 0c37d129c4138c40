package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/algoarena/backend/compare"
	"github.com/algoarena/backend/httpjson"
	"github.com/algoarena/backend/judge"
	"github.com/algoarena/backend/subm"
)

// caseResultView is a judge.CaseOutcome enriched with a unified
// diff for failed sample cases.
type caseResultView struct {
	judge.CaseOutcome
	Diff string `json:"diff,omitempty"`
}

type runResponse struct {
	Verdict     judge.Verdict    `json:"verdict"`
	Total       int              `json:"total"`
	TotalPassed int              `json:"total_passed"`
	Results     []caseResultView `json:"results"`
}

// runCode judges code against the task's sample cases only and
// returns full per-case detail. Nothing is persisted.
func (httpserver *HttpServer) runCode(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type runRequest struct {
		Code    string `json:"code"`
		LangID  string `json:"lang_id"`
		Version string `json:"version"`
		TaskID  string `json:"task_id"`
	}

	var request runRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	summary, err := httpserver.submSrvc.Run(r.Context(), subm.RunParams{
		TaskID:  request.TaskID,
		LangID:  request.LangID,
		Version: request.Version,
		Content: request.Code,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	response := runResponse{
		Verdict:     summary.Verdict,
		Total:       summary.Total,
		TotalPassed: summary.TotalPassed,
		Results:     make([]caseResultView, 0, len(summary.Results)),
	}
	for _, res := range summary.Results {
		view := caseResultView{CaseOutcome: res}
		if res.Status == judge.StatusRunOK && !res.Passed {
			view.Diff = compare.Diff(res.Output, res.Expected)
		}
		response.Results = append(response.Results, view)
	}

	httpjson.WriteSuccessJson(w, response)
}
