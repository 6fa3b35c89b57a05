package http

import (
	"net/http"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/shared/loggers"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type healthHandler struct {
	backend logsources.BackendClient
}

func NewHealthHandler(backend logsources.BackendClient) AppHttpHandler {
	return &healthHandler{backend: backend}
}

// Handle processes GET /health. The gateway itself is up even when the backend is not.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	resp := HealthResponse{Status: "ok", Backend: "ok"}
	if err := h.backend.Health(r.Context()); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("log backend health check failed")
		resp.Backend = "unavailable"
	}
	return writeJSON(w, http.StatusOK, resp)
}
