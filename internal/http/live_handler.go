package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"log-dashboard/internal/dashboards"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	liveWriteTimeout = 10 * time.Second
	liveReadLimit    = 512
)

type liveHandler struct {
	dashboardService dashboards.DashboardService
	upgrader         websocket.Upgrader
	interval         time.Duration
}

// NewLiveHandler streams the dashboard of one file over a websocket. The current view is pushed on
// connect and again whenever a refresh, polled every interval, changes it.
func NewLiveHandler(dashboardService dashboards.DashboardService, interval time.Duration) AppHttpHandler {
	return &liveHandler{
		dashboardService: dashboardService,
		interval:         interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
	}
}

// Handle processes GET /api/files/{fileHash}/live.
func (h *liveHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}
	fileHash := chi.URLParam(r, paramFileHash)
	logger := loggers.Ctx(r.Context()).With().Str(loggers.FieldFileHash, fileHash).Logger()

	// load before upgrading so failures still get a regular error response
	view, err := h.dashboardService.LoadDashboard(r.Context(), sess, fileHash)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return nil
	}
	defer conn.Close()
	metricLiveStreams.Inc()
	defer metricLiveStreams.Dec()

	conn.SetReadLimit(liveReadLimit)
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Debug().Err(err).Msg("websocket read failed")
				}
				return
			}
		}
	}()

	if err := writeLive(conn, view); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			return nil
		case <-ticker.C:
			next, err := h.dashboardService.LoadDashboard(r.Context(), sess, fileHash)
			if err != nil {
				closeLive(conn, err)
				return nil
			}
			if !dashboardChanged(view, next) {
				_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return nil
				}
				continue
			}
			view = next
			if err := writeLive(conn, view); err != nil {
				return nil
			}
		}
	}
}

func writeLive(conn *websocket.Conn, view *dashboards.DashboardView) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return conn.WriteJSON(view)
}

func closeLive(conn *websocket.Conn, err error) {
	code, reason := websocket.CloseInternalServerErr, "dashboard refresh failed"
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		reason = svcErr.Message
		if svcErr.HttpStatusCode == http.StatusUnauthorized {
			code = websocket.ClosePolicyViolation
		}
	}
	// close frame payloads are capped at 125 bytes including the 2-byte code
	if len(reason) > 123 {
		reason = reason[:123]
	}
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
}

// dashboardChanged reports whether next differs from prev in what the dashboard renders.
func dashboardChanged(prev, next *dashboards.DashboardView) bool {
	if prev.Stale != next.Stale {
		return true
	}
	if prev.Snapshot == nil || next.Snapshot == nil {
		return prev.Snapshot != next.Snapshot
	}
	return *prev.Snapshot != *next.Snapshot
}

// sameOrigin accepts requests without an Origin header and those whose origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
