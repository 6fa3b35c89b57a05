package http

import (
	"encoding/json"
	"net/http"

	"log-dashboard/internal/sessions"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// requestSession returns the session attached by the auth gate.
func requestSession(r *http.Request) (*sessions.Session, error) {
	sess, ok := sessions.FromContext(r.Context())
	if !ok {
		return nil, errSessionRequired()
	}
	return sess, nil
}
