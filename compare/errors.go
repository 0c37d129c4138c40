package compare

import (
	"github.com/algoarena/backend/srvcerror"
)

const ErrCodePoolNotInitialized = "comparator_pool_not_initialized"

func ErrPoolNotInitialized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePoolNotInitialized,
		"comparator pool is not initialized",
	)
}

const ErrCodeDispatchFailed = "comparator_dispatch_failed"

func ErrDispatchFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDispatchFailed,
		"failed to dispatch comparison to worker pool",
	)
}
