package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-dashboard/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

// testHandler wraps a function to implement AppHttpHandler for tests.
type testHandler struct {
	handleFunc func(w http.ResponseWriter, r *http.Request) error
}

func (h *testHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.handleFunc(w, r)
}

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedCode     string
		expectedMessage  string
		expectedLevel    string
	}{
		{
			name:             "invalid argument",
			err:              svcerrors.NewInvalidArgumentError("DSH_1001", "unsupported file type", nil),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "invalid_argument",
			expectedCode:     "DSH_1001",
			expectedMessage:  "unsupported file type",
			expectedLevel:    `"level":"debug"`,
		},
		{
			name:             "unauthenticated",
			err:              svcerrors.NewUnauthenticatedError("AUTH_1003", "sign in required", nil),
			expectedStatus:   http.StatusUnauthorized,
			expectedCategory: "unauthenticated",
			expectedCode:     "AUTH_1003",
			expectedMessage:  "sign in required",
			expectedLevel:    `"level":"debug"`,
		},
		{
			name:             "not found",
			err:              svcerrors.NewNotFoundError("DSH_1004", "file abc not found", nil),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: "not_found",
			expectedCode:     "DSH_1004",
			expectedMessage:  "file abc not found",
			expectedLevel:    `"level":"debug"`,
		},
		{
			name:             "upstream",
			err:              svcerrors.NewUpstreamError("DSH_9000", "Error loading logs: HTTP 500: boom", assert.AnError),
			expectedStatus:   http.StatusBadGateway,
			expectedCategory: "upstream",
			expectedCode:     "DSH_9000",
			expectedMessage:  "Error loading logs: HTTP 500: boom",
			expectedLevel:    `"level":"warn"`,
		},
		{
			name:             "internal",
			err:              svcerrors.NewInternalError("ACT_9001", assert.AnError),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "ACT_9001",
			expectedMessage:  "internal server error",
			expectedLevel:    `"level":"error"`,
		},
		{
			name:             "plain error",
			err:              assert.AnError,
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "SYS_9001",
			expectedMessage:  "internal server error",
			expectedLevel:    `"level":"error"`,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger := newTestLogger(t, &logs)
			handler := errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
			req.Header.Set(headerRequestID, "req-"+tt.expectedCode)
			req = req.WithContext(logger.WithContext(req.Context()))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			errorResponse := decodeErrorResponse(t, rr)
			assert.Equal(t, "req-"+tt.expectedCode, errorResponse.RequestID)
			assert.Equal(t, tt.expectedCategory, errorResponse.ErrorCategory)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
			assert.Contains(t, logs.String(), tt.expectedLevel)
		})
	}
}

func TestErrorHandlingAdapter_RecordsCodeOnAppWriter(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return svcerrors.NewNotFoundError("ACT_1001", "file abc not found", nil)
		},
	})

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	handler.ServeHTTP(appWriter, httptest.NewRequest(http.MethodPost, "/api/files/abc/actions/view", nil))

	assert.Equal(t, http.StatusNotFound, appWriter.Status())
	assert.Equal(t, "ACT_1001", appWriter.ErrorCode())
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Backend: "ok"})
		},
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","backend":"ok"}`, rr.Body.String())
}
