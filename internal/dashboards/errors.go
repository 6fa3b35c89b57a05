package dashboards

import (
	"errors"
	"fmt"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/shared/svcerrors"
)

// DashboardService errors
const (
	codeValidationFailed    = "DSH_1000"
	codeUnsupportedFileType = "DSH_1001"
	codeFileTooLarge        = "DSH_1002"
	codeSessionRejected     = "DSH_1003"
	codeFileNotFound        = "DSH_1004"

	codeBackendFailed = "DSH_9000"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errUnsupportedFileType(fileName string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFileType,
		fmt.Sprintf("unsupported file type %q: only .log and .txt files are accepted", fileName), nil)
}

func errFileTooLarge(size, limit int64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeFileTooLarge,
		fmt.Sprintf("file too large: %d bytes exceeds the %d byte limit", size, limit), nil)
}

func errSessionRejected(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthenticatedError(codeSessionRejected, "session rejected by log backend, please sign in again", cause)
}

func errFileNotFound(fileHash string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeFileNotFound, fmt.Sprintf("file %s not found", fileHash), nil)
}

// errBackendFailed keeps the backend's own message since it is what the user is shown.
func errBackendFailed(title string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeBackendFailed, fmt.Sprintf("%s: %s", title, describeBackendError(cause)), cause)
}

// backendError maps a log backend failure onto a service error.
func backendError(title string, err error) *svcerrors.ServiceError {
	if errors.Is(err, logsources.ErrBackendUnauthorized) || errors.Is(err, logsources.ErrMissingSession) {
		return errSessionRejected(err)
	}
	return errBackendFailed(title, err)
}

func describeBackendError(err error) string {
	var httpErr *logsources.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.Is(err, logsources.ErrBackendUnavailable):
		return logsources.ErrBackendUnavailable.Error()
	default:
		return "unexpected reply from log backend"
	}
}
