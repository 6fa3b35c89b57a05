package fileactions

import (
	"errors"
	"fmt"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/shared/svcerrors"
)

// FileAction errors
const (
	codeUnknownAction   = "ACT_1000"
	codeFileNotFound    = "ACT_1001"
	codeSessionRejected = "ACT_1002"

	codeBackendFailed        = "ACT_9000"
	codeInternalActionFailed = "ACT_9001"
)

func errUnknownAction(name ActionName) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeUnknownAction, fmt.Sprintf("unknown file action %q", name), nil)
}

func errFileNotFound(fileHash string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeFileNotFound, fmt.Sprintf("file %s not found", fileHash), nil)
}

func errBackend(err error) *svcerrors.ServiceError {
	if errors.Is(err, logsources.ErrBackendUnauthorized) || errors.Is(err, logsources.ErrMissingSession) {
		return svcerrors.NewUnauthenticatedError(codeSessionRejected, "session rejected by log backend, please sign in again", err)
	}
	return svcerrors.NewUpstreamError(codeBackendFailed, "log backend request failed", err)
}

func errInternalActionFailed(name ActionName, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalActionFailed, fmt.Errorf("fileAction %s failed: %w", name, cause))
}
