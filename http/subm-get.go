package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/algoarena/backend/httpjson"
)

func (httpserver *HttpServer) getSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	submUuidStr := chi.URLParam(r, "submUuid")
	submUuid, err := uuid.Parse(submUuidStr)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subm, err := httpserver.submSrvc.GetSubm(r.Context(), submUuid)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, subm)
}

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	subms, err := httpserver.submSrvc.ListSubms(r.Context(), limit, offset)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, subms)
}
