package sandbox

import (
	"fmt"
	"net/http"

	"github.com/algoarena/backend/srvcerror"
)

const ErrCodeRuntimeNotFound = "runtime_not_found"

func ErrRuntimeNotFound(langID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRuntimeNotFound,
		fmt.Sprintf("no runtime found for language %q", langID),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEngineUnavailable = "execution_engine_unavailable"

func ErrEngineUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEngineUnavailable,
		"code execution engine is unavailable",
	).SetHttpStatusCode(http.StatusBadGateway)
}
