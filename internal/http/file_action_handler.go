package http

import (
	"fmt"
	"mime"
	"net/http"

	"log-dashboard/internal/fileactions"
	"log-dashboard/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

type fileActionHandler struct {
	registry fileactions.Registry
}

func NewFileActionHandler(registry fileactions.Registry) AppHttpHandler {
	return &fileActionHandler{registry: registry}
}

// Handle processes POST /api/files/{fileHash}/actions/{action}.
func (h *fileActionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}

	name := fileactions.ActionName(chi.URLParam(r, paramAction))
	result, err := h.registry.Run(r.Context(), sess, name, chi.URLParam(r, paramFileHash))
	if err != nil {
		return err
	}

	switch result.Kind {
	case fileactions.ResultRedirect:
		w.Header().Set(headerLocation, result.RedirectURL)
		return writeJSON(w, http.StatusSeeOther, map[string]string{"location": result.RedirectURL})
	case fileactions.ResultAttachment:
		w.Header().Set(headerContentType, result.ContentType)
		w.Header().Set(headerContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName}))
		w.WriteHeader(http.StatusOK)
		// headers are sent, a failed write can only be logged
		if _, err := w.Write(result.Body); err != nil {
			loggers.Ctx(r.Context()).Warn().Err(err).Str(loggers.FieldAction, string(name)).Msg("attachment write failed")
		}
		return nil
	case fileactions.ResultNotification:
		return writeJSON(w, http.StatusOK, map[string]any{"notification": result.Notification})
	default:
		return fmt.Errorf("unhandled file action result kind %q", result.Kind)
	}
}

type actionsHandler struct {
	registry fileactions.Registry
}

func NewActionsHandler(registry fileactions.Registry) AppHttpHandler {
	return &actionsHandler{registry: registry}
}

// Handle processes GET /api/actions, the entries of the per-file dropdown.
func (h *actionsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string][]fileactions.ActionName{"actions": h.registry.Names()})
}
