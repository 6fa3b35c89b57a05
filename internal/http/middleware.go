package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/svcerrors"
	"log-dashboard/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter wraps the writer once so later middlewares can read status, error code and user.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus counts and times requests per route pattern, status and error code. Patterns keep
// file hashes out of the label values.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		errorCode := ""
		if appWriter, ok := w.(*appResponseWriter); ok {
			errorCode = appWriter.ErrorCode()
		}
		status := strconv.Itoa(responseStatus(w))

		metricRequestsTotal.WithLabelValues(r.Method, route, status, errorCode).Inc()
		metricRequestDuration.WithLabelValues(r.Method, route, status, errorCode).Observe(time.Since(start).Seconds())
	})
}

// responseStatus is the status written so far, 200 when nothing set one.
func responseStatus(w http.ResponseWriter) int {
	if appWriter, ok := w.(*appResponseWriter); ok && appWriter.Status() != 0 {
		return appWriter.Status()
	}
	return http.StatusOK
}

// mwRequestID keeps the caller's x-request-id or assigns a ULID, and scopes the logger in context to it.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			logger := httpLogger.With().Str(loggers.FieldRequestID, requestID).Logger()
			next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
		})
	}
}

// mwRequestCompletionLog writes one line per request with its route, status, error code and the
// signed-in user when the auth gate admitted one.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path)

			if appWriter, ok := w.(*appResponseWriter); ok {
				if code := appWriter.ErrorCode(); code != "" {
					event = event.Str(loggers.FieldErrorCode, code)
				}
				if username := appWriter.Username(); username != "" {
					event = event.Str(loggers.FieldUsername, username)
				}
			}
			if fileHash := chi.URLParam(r, paramFileHash); fileHash != "" {
				event = event.Str(loggers.FieldFileHash, fileHash)
			}

			event.Int(loggers.FieldHttpStatus, responseStatus(w)).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into SYS_9000 and logs the stack with the request it broke.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}

			event := loggers.Ctx(r.Context()).Error().
				Err(panicErr).
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Bytes(loggers.FieldErrorStack, debug.Stack())
			if appWriter, ok := w.(*appResponseWriter); ok && appWriter.Username() != "" {
				event = event.Str(loggers.FieldUsername, appWriter.Username())
			}
			event.Msg("http panic recovered")

			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}

// mwAuthGate admits requests carrying a live authenticated session and redirects the rest to the login path.
// The resolved session is attached to the request context for the handlers.
func mwAuthGate(store sessions.SessionStore, opts SessionCookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := loggers.Ctx(r.Context())

			id := sessionID(r, opts)
			if id == "" {
				http.Redirect(w, r, opts.LoginPath, http.StatusFound)
				return
			}

			session, err := store.Get(r.Context(), id)
			if err != nil || !session.IsAuthenticated(time.Now()) {
				logger.Debug().Err(err).Msg("rejected request without a live session")
				clearSessionCookie(w, opts)
				http.Redirect(w, r, opts.LoginPath, http.StatusFound)
				return
			}

			if appWriter, ok := w.(*appResponseWriter); ok {
				appWriter.SetUsername(session.Username)
			}
			ctx := logger.With().Str(loggers.FieldUsername, session.Username).Logger().WithContext(r.Context())
			ctx = sessions.WithSession(ctx, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
