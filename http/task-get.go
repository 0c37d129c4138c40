package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/algoarena/backend/httpjson"
	"github.com/algoarena/backend/judge"
	"github.com/algoarena/backend/task"
)

// taskView hides non-sample test cases; hidden inputs and answers
// never leave the server.
type taskView struct {
	ShortID  string           `json:"short_id"`
	FullName string           `json:"full_name"`
	Samples  []judge.TestCase `json:"samples"`
}

func mapTask(t task.Task) taskView {
	view := taskView{
		ShortID:  t.ShortID,
		FullName: t.FullName,
		Samples:  []judge.TestCase{},
	}
	for _, tc := range t.Tests {
		if tc.IsSample {
			view.Samples = append(view.Samples, tc)
		}
	}
	return view
}

func (httpserver *HttpServer) getTask(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	shortID := chi.URLParam(r, "taskShortId")
	t, err := httpserver.taskSrvc.GetTask(r.Context(), shortID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTask(t))
}

func (httpserver *HttpServer) listTasks(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	tasks, err := httpserver.taskSrvc.ListTasks(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, mapTask(t))
	}

	httpjson.WriteSuccessJson(w, views)
}
