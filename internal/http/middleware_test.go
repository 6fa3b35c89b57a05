package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log-dashboard/internal/sessions"
	sessionmocks "log-dashboard/internal/sessions/mocks"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCookie = SessionCookieOptions{Name: "sid", LoginPath: "/login.html"}

func newTestLogger(t *testing.T, buf *bytes.Buffer) loggers.Logger {
	t.Helper()
	logger, err := loggers.NewWithWriter("debug", loggers.FormatJSON, buf)
	require.NoError(t, err)
	return logger
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	return errorResponse
}

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providedID string
	}{
		{name: "generates ULID when absent"},
		{name: "keeps caller ID", providedID: "custom-request-id-12345"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			handler := mwRequestID(newTestLogger(t, &logs))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id := r.Header.Get(headerRequestID)
				if tt.providedID != "" {
					assert.Equal(t, tt.providedID, id)
				} else {
					assert.Len(t, id, 26)
				}
				loggers.Ctx(r.Context()).Info().Msg("inside handler")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.providedID != "" {
				req.Header.Set(headerRequestID, tt.providedID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, logs.String(), `"request_id":"`+req.Header.Get(headerRequestID)+`"`)
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "string panic", panicValue: "critical error occurred"},
		{name: "error panic", panicValue: assert.AnError},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			handler := mwRecoverer(mwRequestID(newTestLogger(t, &logs))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			errorResponse := decodeErrorResponse(t, rr)
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRecoverer_PassesThroughWhenNoPanic(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("success"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	router := chi.NewRouter()
	setupMiddleware(router, newTestLogger(t, &logs))
	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(headerRequestID))
		w.WriteHeader(http.StatusAccepted)
	})
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, logs.String(), `"http_status":202`)

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "SYS_9000", decodeErrorResponse(t, rr).ErrorCode)
}

func TestMwAuthGate(t *testing.T) {
	t.Parallel()

	live := &sessions.Session{
		ID:            "01J0000000000000000000000A",
		Username:      "alice@example.com",
		AccessToken:   "token",
		Authenticated: true,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	expired := *live
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	anonymous := *live
	anonymous.Username = ""

	tests := []struct {
		name        string
		cookie      string
		setup       func(store *sessionmocks.MockSessionStore)
		expectAdmit bool
	}{
		{
			name:  "no cookie",
			setup: func(store *sessionmocks.MockSessionStore) {},
		},
		{
			name:   "unknown session",
			cookie: "01J0000000000000000000000B",
			setup: func(store *sessionmocks.MockSessionStore) {
				store.EXPECT().Get(gomock.Any(), "01J0000000000000000000000B").Return(nil, sessions.ErrSessionNotFound)
			},
		},
		{
			name:   "expired session",
			cookie: live.ID,
			setup: func(store *sessionmocks.MockSessionStore) {
				store.EXPECT().Get(gomock.Any(), live.ID).Return(&expired, nil)
			},
		},
		{
			name:   "session without username",
			cookie: live.ID,
			setup: func(store *sessionmocks.MockSessionStore) {
				store.EXPECT().Get(gomock.Any(), live.ID).Return(&anonymous, nil)
			},
		},
		{
			name:   "live session",
			cookie: live.ID,
			setup: func(store *sessionmocks.MockSessionStore) {
				store.EXPECT().Get(gomock.Any(), live.ID).Return(live, nil)
			},
			expectAdmit: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := sessionmocks.NewMockSessionStore(ctrl)
			tt.setup(store)

			admitted := false
			handler := mwAuthGate(store, testCookie)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				admitted = true
				sess, ok := sessions.FromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, live.Username, sess.Username)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectAdmit, admitted)
			if tt.expectAdmit {
				assert.Equal(t, http.StatusOK, rr.Code)
				return
			}
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/login.html", rr.Header().Get("Location"))
		})
	}
}

func TestRequestSession_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	_, err := requestSession(req)
	require.Error(t, err)

	req = req.WithContext(sessions.WithSession(context.Background(), &sessions.Session{Username: "alice"}))
	sess, err := requestSession(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
}

// logLine returns the first JSON log line carrying msg.
func logLine(t *testing.T, logs *bytes.Buffer, msg string) map[string]any {
	t.Helper()
	for _, raw := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		if line["message"] == msg {
			return line
		}
	}
	t.Fatalf("no log line with message %q in %s", msg, logs.String())
	return nil
}

func TestSetupMiddleware_LogsCarryRequestFields(t *testing.T) {
	t.Parallel()

	live := &sessions.Session{
		ID:            "01J0000000000000000000000A",
		Username:      "alice@example.com",
		Authenticated: true,
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	newRouter := func(t *testing.T, logs *bytes.Buffer) *chi.Mux {
		ctrl := gomock.NewController(t)
		store := sessionmocks.NewMockSessionStore(ctrl)
		store.EXPECT().Get(gomock.Any(), live.ID).Return(live, nil)

		router := chi.NewRouter()
		setupMiddleware(router, newTestLogger(t, logs))
		router.Group(func(r chi.Router) {
			r.Use(mwAuthGate(store, testCookie))
			r.Method(http.MethodGet, "/api/files/{fileHash}/logs", errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return svcerrors.NewNotFoundError("FILE_4001", "file not found", nil)
				},
			}))
			r.Get("/api/files/{fileHash}/boom", func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			})
		})
		return router
	}

	newRequest := func(path string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: live.ID})
		return req
	}

	t.Run("completion log", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(t, &logs).ServeHTTP(rr, newRequest("/api/files/abc123/logs"))
		require.Equal(t, http.StatusNotFound, rr.Code)

		line := logLine(t, &logs, "request completed")
		assert.Equal(t, "alice@example.com", line[loggers.FieldUsername])
		assert.Equal(t, "FILE_4001", line[loggers.FieldErrorCode])
		assert.Equal(t, "abc123", line[loggers.FieldFileHash])
		assert.Equal(t, "/api/files/abc123/logs", line[loggers.FieldHttpPath])
		assert.EqualValues(t, http.StatusNotFound, line[loggers.FieldHttpStatus])
	})

	t.Run("recovered panic", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(t, &logs).ServeHTTP(rr, newRequest("/api/files/abc123/boom"))
		require.Equal(t, http.StatusInternalServerError, rr.Code)

		line := logLine(t, &logs, "http panic recovered")
		assert.Equal(t, "boom", line["error"])
		assert.Equal(t, "alice@example.com", line[loggers.FieldUsername])
		assert.Equal(t, "/api/files/abc123/boom", line[loggers.FieldHttpPath])
		assert.NotEmpty(t, line[loggers.FieldErrorStack])

		completed := logLine(t, &logs, "request completed")
		assert.Equal(t, "SYS_9000", completed[loggers.FieldErrorCode])
	})
}
