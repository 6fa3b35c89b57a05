package http

import (
	"fmt"

	"log-dashboard/internal/shared/svcerrors"
)

// Transport errors
const (
	codeInvalidRequest      = "REQ_1000"
	codeUnsupportedMedia    = "REQ_1001"
	codeInvalidCredentials  = "AUTH_1000"
	codeLoginRejected       = "AUTH_1001"
	codeRegistrationRefused = "AUTH_1002"
	codeSessionRequired     = "AUTH_1003"

	codeAuthBackendFailed = "AUTH_9000"
)

func errInvalidRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequest, msg, cause)
}

func errUnsupportedMedia(contentType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedMedia, fmt.Sprintf("unsupported content type %q", contentType), nil)
}

func errInvalidCredentials(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidCredentials, msg, cause)
}

func errLoginRejected(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthenticatedError(codeLoginRejected, "incorrect email or password", cause)
}

func errRegistrationRefused(detail string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRegistrationRefused, fmt.Sprintf("registration refused: %s", detail), cause)
}

func errSessionRequired() *svcerrors.ServiceError {
	return svcerrors.NewUnauthenticatedError(codeSessionRequired, "sign in required", nil)
}

func errAuthBackendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeAuthBackendFailed, "log backend request failed", cause)
}
