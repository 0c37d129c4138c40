package http

import (
	"net/http"

	"github.com/algoarena/backend/httpjson"
)

type languageView struct {
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Aliases  []string `json:"aliases"`
}

// listLanguages exposes the engine's cached runtime table. The
// table is refreshed once at process start; newly installed
// runtimes appear after a restart.
func (httpserver *HttpServer) listLanguages(w http.ResponseWriter, r *http.Request) {
	runtimes := httpserver.sandbox.Runtimes()

	views := make([]languageView, 0, len(runtimes))
	for _, rt := range runtimes {
		views = append(views, languageView{
			Language: rt.Language,
			Version:  rt.Version,
			Aliases:  rt.Aliases,
		})
	}

	httpjson.WriteSuccessJson(w, views)
}
