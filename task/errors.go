package task

import (
	"net/http"

	"github.com/algoarena/backend/srvcerror"
)

const ErrCodeTaskNotFound = "task_not_found"

func ErrTaskNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskNotFound,
		"the requested task was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
