package subm

import (
	"fmt"
	"net/http"

	"github.com/algoarena/backend/srvcerror"
)

const ErrCodeSubmissionTooLong = "submission_too_long"

func ErrSubmissionTooLong(maxSubmLengthKB int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionTooLong,
		fmt.Sprintf("submission code is too long, the maximum length is %d KB", maxSubmLengthKB),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"the requested submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
