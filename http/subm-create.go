package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/algoarena/backend/httpjson"
	"github.com/algoarena/backend/subm"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type createSubmissionRequest struct {
		Code    string `json:"code"`
		LangID  string `json:"lang_id"`
		Version string `json:"version"`
		TaskID  string `json:"task_id"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	authorUuid := uuid.Nil
	if claims := claimsFromContext(r.Context()); claims != nil {
		authorUuid = claims.UserUUID
	}

	logger.Info("received submission",
		"task", request.TaskID, "lang", request.LangID)

	created, err := httpserver.submSrvc.Submit(r.Context(), subm.SubmitParams{
		TaskID:     request.TaskID,
		AuthorUUID: authorUuid,
		LangID:     request.LangID,
		Version:    request.Version,
		Content:    request.Code,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, created)
}
