package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/validators"
)

var requestValidator = validators.New()

type loginRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=256"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type LoginResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type loginHandler struct {
	backend logsources.BackendClient
	store   sessions.SessionStore
	cookie  SessionCookieOptions
}

func NewLoginHandler(backend logsources.BackendClient, store sessions.SessionStore, cookie SessionCookieOptions) AppHttpHandler {
	return &loginHandler{backend: backend, store: store, cookie: cookie}
}

// Handle processes POST /login with form fields email and password.
func (h *loginHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return errInvalidRequest("invalid login form", err)
	}
	req := loginRequest{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	if err := requestValidator.Struct(req); err != nil {
		return errInvalidCredentials(fmt.Sprintf("invalid credentials: %s", validators.Describe(err)), err)
	}

	token, err := h.backend.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var httpErr *logsources.HTTPError
		if errors.Is(err, logsources.ErrBackendUnauthorized) || (errors.As(err, &httpErr) && httpErr.StatusCode < 500) {
			return errLoginRejected(err)
		}
		return errAuthBackendFailed(err)
	}

	session, err := h.store.Create(r.Context(), req.Email, token.AccessToken)
	if err != nil {
		return err
	}
	setSessionCookie(w, h.cookie, session)

	loggers.Ctx(r.Context()).Info().Str(loggers.FieldUsername, session.Username).Msg("user signed in")
	return writeJSON(w, http.StatusOK, LoginResponse{Username: session.Username, ExpiresAt: session.ExpiresAt})
}

type registerHandler struct {
	backend logsources.BackendClient
}

func NewRegisterHandler(backend logsources.BackendClient) AppHttpHandler {
	return &registerHandler{backend: backend}
}

// Handle processes POST /register with a JSON body.
func (h *registerHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if mediaType, _, _ := mime.ParseMediaType(contentType(r)); mediaType != "application/json" {
		return errUnsupportedMedia(contentType(r))
	}

	var req registerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		return errInvalidRequest("invalid json", err)
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := requestValidator.Struct(req); err != nil {
		return errInvalidCredentials(fmt.Sprintf("invalid registration: %s", validators.Describe(err)), err)
	}

	user, err := h.backend.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var httpErr *logsources.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
			return errRegistrationRefused(httpErr.Body, err)
		}
		return errAuthBackendFailed(err)
	}

	return writeJSON(w, http.StatusCreated, user)
}

type logoutHandler struct {
	store  sessions.SessionStore
	cookie SessionCookieOptions
}

func NewLogoutHandler(store sessions.SessionStore, cookie SessionCookieOptions) AppHttpHandler {
	return &logoutHandler{store: store, cookie: cookie}
}

// Handle processes POST /logout. It succeeds whether or not a session was present.
func (h *logoutHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if id := sessionID(r, h.cookie); id != "" {
		if err := h.store.Delete(r.Context(), id); err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
			return err
		}
	}
	clearSessionCookie(w, h.cookie)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
