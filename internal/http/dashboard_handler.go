package http

import (
	"net/http"
	"strconv"
	"strings"

	"log-dashboard/internal/dashboards"

	"github.com/go-chi/chi/v5"
)

const (
	paramFileHash = "fileHash"
	paramAction   = "action"

	// multipartOverhead is allowed on top of the upload limit for the form framing.
	multipartOverhead = 1 << 20
)

type filesHandler struct {
	dashboardService dashboards.DashboardService
}

func NewFilesHandler(dashboardService dashboards.DashboardService) AppHttpHandler {
	return &filesHandler{dashboardService: dashboardService}
}

// Handle processes GET /api/files.
func (h *filesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}
	view, err := h.dashboardService.LoadFiles(r.Context(), sess)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, view)
}

type uploadHandler struct {
	dashboardService dashboards.DashboardService
	maxUploadBytes   int64
}

func NewUploadHandler(dashboardService dashboards.DashboardService, maxUploadBytes int64) AppHttpHandler {
	return &uploadHandler{dashboardService: dashboardService, maxUploadBytes: maxUploadBytes}
}

// Handle processes POST /api/uploads with the log file in the multipart field "file".
func (h *uploadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		return errInvalidRequest("multipart field \"file\" is required", err)
	}
	defer file.Close()

	result, err := h.dashboardService.Upload(r.Context(), sess, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, result)
}

type dashboardHandler struct {
	dashboardService dashboards.DashboardService
}

func NewDashboardHandler(dashboardService dashboards.DashboardService) AppHttpHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// Handle processes GET /api/files/{fileHash}/dashboard.
func (h *dashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}
	view, err := h.dashboardService.LoadDashboard(r.Context(), sess, chi.URLParam(r, paramFileHash))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, view)
}

type logsHandler struct {
	dashboardService dashboards.DashboardService
}

func NewLogsHandler(dashboardService dashboards.DashboardService) AppHttpHandler {
	return &logsHandler{dashboardService: dashboardService}
}

// Handle processes GET /api/files/{fileHash}/logs?status=4xx&ip=&method=&limit=&offset=.
func (h *logsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}

	query := r.URL.Query()
	filter := dashboards.LogFilter{
		StatusClass: strings.ToLower(strings.TrimSpace(query.Get("status"))),
		IP:          strings.TrimSpace(query.Get("ip")),
		Method:      strings.TrimSpace(query.Get("method")),
	}
	if filter.Limit, err = intQueryParam(query.Get("limit")); err != nil {
		return errInvalidRequest("limit must be an integer", err)
	}
	if filter.Offset, err = intQueryParam(query.Get("offset")); err != nil {
		return errInvalidRequest("offset must be an integer", err)
	}

	page, err := h.dashboardService.ListLogRows(r.Context(), sess, chi.URLParam(r, paramFileHash), filter)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, page)
}

type analysisHandler struct {
	dashboardService dashboards.DashboardService
}

func NewAnalysisHandler(dashboardService dashboards.DashboardService) AppHttpHandler {
	return &analysisHandler{dashboardService: dashboardService}
}

// Handle processes POST /api/files/{fileHash}/analysis.
func (h *analysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}
	view, err := h.dashboardService.Analyze(r.Context(), sess, chi.URLParam(r, paramFileHash))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, view)
}

func intQueryParam(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
