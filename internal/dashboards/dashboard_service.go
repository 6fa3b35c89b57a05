package dashboards

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"log-dashboard/internal/aggregators"
	"log-dashboard/internal/insights"
	"log-dashboard/internal/logsources"
	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/metrics"
	"log-dashboard/internal/shared/svcerrors"
	"log-dashboard/internal/shared/validators"
	"log-dashboard/internal/stores"
)

const defaultMaxUploadBytes = 10 << 20

var filterValidator = validators.New()

type FilesView struct {
	Files        []*models.FileDescriptor `json:"files"`
	Selected     *models.FileDescriptor   `json:"selected"`
	Notification *models.Notification     `json:"notification,omitempty"`
}

// DashboardView is everything the metric cards and the timeline chart render for one file.
// Stale is set when the backend could not be reached and Snapshot is the last-known one.
type DashboardView struct {
	FileHash     string                  `json:"fileHash"`
	Snapshot     *models.MetricsSnapshot `json:"snapshot"`
	Timeline     []models.TimelinePoint  `json:"timeline"`
	Stale        bool                    `json:"stale"`
	RefreshedAt  time.Time               `json:"refreshedAt"`
	Notification *models.Notification    `json:"notification,omitempty"`
}

type UploadResult struct {
	File         *models.FileDescriptor `json:"file"`
	Notification models.Notification    `json:"notification"`
}

type AnalysisView struct {
	*insights.InsightsView
	Notification models.Notification `json:"notification"`
}

type Options struct {
	MaxUploadBytes int64
}

//go:generate mockgen -source=dashboard_service.go -destination=./mocks/dashboard_service_mock.go -package=mocks
type DashboardService interface {
	// LoadFiles lists the user's files. Backend failures other than a rejected session
	// are reported through the view's notification with an empty list.
	LoadFiles(ctx context.Context, sess *sessions.Session) (*FilesView, error)
	// LoadDashboard fetches the file's logs and recomputes its metrics. When the fetch fails the
	// last-known snapshot is returned as stale and is left untouched.
	LoadDashboard(ctx context.Context, sess *sessions.Session, fileHash string) (*DashboardView, error)
	ListLogRows(ctx context.Context, sess *sessions.Session, fileHash string, filter LogFilter) (*LogPage, error)
	Upload(ctx context.Context, sess *sessions.Session, fileName, contentType string, size int64, r io.Reader) (*UploadResult, error)
	Analyze(ctx context.Context, sess *sessions.Session, fileHash string) (*AnalysisView, error)
}

type dashboardService struct {
	backend    logsources.BackendClient
	aggregator aggregators.MetricsAggregator
	snapshots  stores.SnapshotStore
	projector  LogRowProjector
	presenter  insights.Presenter
	opts       Options
	now        func() time.Time
}

func NewDashboardService(
	backend logsources.BackendClient,
	aggregator aggregators.MetricsAggregator,
	snapshots stores.SnapshotStore,
	projector LogRowProjector,
	presenter insights.Presenter,
	opts Options,
) DashboardService {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &dashboardService{
		backend:    backend,
		aggregator: aggregator,
		snapshots:  snapshots,
		projector:  projector,
		presenter:  presenter,
		opts:       opts,
		now:        time.Now,
	}
}

func (s *dashboardService) LoadFiles(ctx context.Context, sess *sessions.Session) (*FilesView, error) {
	files, err := s.backend.ListFiles(ctx, sess)
	if err != nil {
		svcErr := backendError("Failed to load files", err)
		if svcErr.Code == codeSessionRejected {
			return nil, svcErr
		}
		loggers.Ctx(ctx).Warn().Err(err).Msg("Failed to load files")
		notification := models.NewErrorNotification("Error loading files", describeBackendError(err))
		return &FilesView{Files: []*models.FileDescriptor{}, Notification: &notification}, nil
	}

	// a JSON null from the backend still renders as an empty list
	if files == nil {
		files = []*models.FileDescriptor{}
	}
	view := &FilesView{Files: files}
	if len(files) > 0 {
		view.Selected = files[0]
	}
	return view, nil
}

func (s *dashboardService) LoadDashboard(ctx context.Context, sess *sessions.Session, fileHash string) (*DashboardView, error) {
	if err := validateFileHash(fileHash); err != nil {
		return nil, err
	}
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldFileHash, fileHash).Logger()

	logs, err := s.backend.GetLogs(ctx, sess, fileHash)
	if err != nil {
		svcErr := backendError("Failed to load logs", err)
		if svcErr.Code == codeSessionRejected {
			return nil, svcErr
		}
		logger.Warn().Err(err).Msg("Failed to load logs, serving last-known snapshot")
		return s.lastKnownView(ctx, sess, fileHash, describeBackendError(err)), nil
	}

	snapshot := s.aggregator.Compute(logs)
	if err := s.snapshots.Put(ctx, sess.Username, fileHash, snapshot); err != nil {
		logger.Error().Err(err).Msg("Failed to persist last-known snapshot")
	}

	metricDashboardLoadsTotal.WithLabelValues(outcomeFresh).Inc()
	return &DashboardView{
		FileHash:    fileHash,
		Snapshot:    snapshot,
		Timeline:    aggregators.Timeline(snapshot),
		RefreshedAt: s.now(),
	}, nil
}

func (s *dashboardService) lastKnownView(ctx context.Context, sess *sessions.Session, fileHash, reason string) *DashboardView {
	notification := models.NewErrorNotification("Error loading logs", reason)
	view := &DashboardView{
		FileHash:     fileHash,
		Stale:        true,
		RefreshedAt:  s.now(),
		Notification: &notification,
	}

	snapshot, err := s.snapshots.Get(ctx, sess.Username, fileHash)
	switch {
	case err == nil:
		metricDashboardLoadsTotal.WithLabelValues(outcomeStale).Inc()
	case errors.Is(err, stores.ErrSnapshotNotFound):
		snapshot = s.aggregator.Compute(nil)
		metricDashboardLoadsTotal.WithLabelValues(outcomeEmpty).Inc()
	default:
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldFileHash, fileHash).Msg("Failed to read last-known snapshot")
		snapshot = s.aggregator.Compute(nil)
		metricDashboardLoadsTotal.WithLabelValues(outcomeEmpty).Inc()
	}

	view.Snapshot = snapshot
	view.Timeline = aggregators.Timeline(snapshot)
	return view
}

func (s *dashboardService) ListLogRows(ctx context.Context, sess *sessions.Session, fileHash string, filter LogFilter) (*LogPage, error) {
	if err := validateFileHash(fileHash); err != nil {
		return nil, err
	}
	if err := filterValidator.Struct(filter); err != nil {
		return nil, errValidationFailed(fmt.Sprintf("invalid log filter: %s", validators.Describe(err)), err)
	}

	logs, err := s.backend.GetLogs(ctx, sess, fileHash)
	if err != nil {
		return nil, backendError("Failed to load logs", err)
	}
	return s.projector.Project(logs, filter), nil
}

func (s *dashboardService) Upload(ctx context.Context, sess *sessions.Session, fileName, contentType string, size int64, r io.Reader) (*UploadResult, error) {
	result, err := s.upload(ctx, sess, fileName, contentType, size, r)
	if err != nil {
		metricUploadsTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}
	metricUploadsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *dashboardService) upload(ctx context.Context, sess *sessions.Session, fileName, contentType string, size int64, r io.Reader) (*UploadResult, *svcerrors.ServiceError) {
	fileName = strings.TrimSpace(filepath.Base(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, errValidationFailed("file name is required", nil)
	}
	if r == nil || size == 0 {
		return nil, errValidationFailed("file is empty", nil)
	}
	if !isLogFile(fileName, contentType) {
		return nil, errUnsupportedFileType(fileName)
	}
	if size > s.opts.MaxUploadBytes {
		return nil, errFileTooLarge(size, s.opts.MaxUploadBytes)
	}

	file, err := s.backend.UploadFile(ctx, sess, fileName, io.LimitReader(r, s.opts.MaxUploadBytes))
	if err != nil {
		return nil, backendError("Upload failed", err)
	}

	loggers.Ctx(ctx).Info().Str(loggers.FieldFileHash, file.FileHash).Int64("file_size", file.FileSize).Msg("File uploaded")
	return &UploadResult{
		File:         file,
		Notification: models.NewInfoNotification("File uploaded successfully", fmt.Sprintf("%s has been processed and is ready for analysis.", fileName)),
	}, nil
}

func (s *dashboardService) Analyze(ctx context.Context, sess *sessions.Session, fileHash string) (*AnalysisView, error) {
	view, err := s.analyze(ctx, sess, fileHash)
	if err != nil {
		metricAnalysesTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}
	metricAnalysesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return view, nil
}

func (s *dashboardService) analyze(ctx context.Context, sess *sessions.Session, fileHash string) (*AnalysisView, *svcerrors.ServiceError) {
	if err := validateFileHash(fileHash); err != nil {
		return nil, err
	}

	files, err := s.backend.ListFiles(ctx, sess)
	if err != nil {
		return nil, backendError("Analysis failed", err)
	}
	file := findFile(files, fileHash)
	if file == nil {
		return nil, errFileNotFound(fileHash)
	}

	analysis, err := s.backend.AnalyzeFile(ctx, sess, fileHash)
	if err != nil {
		return nil, backendError("Analysis failed", err)
	}

	presented := s.presenter.Present(file.FileName, analysis.Insights)
	return &AnalysisView{
		InsightsView: presented,
		Notification: models.NewInfoNotification("Analysis complete",
			fmt.Sprintf("Found %d insights for %s", len(analysis.Insights), file.FileName)),
	}, nil
}

func validateFileHash(fileHash string) *svcerrors.ServiceError {
	if strings.TrimSpace(fileHash) == "" {
		return errValidationFailed("file hash is required", nil)
	}
	return nil
}

func isLogFile(fileName, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".log" || ext == ".txt" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(contentType), "text/plain")
}

// findFile returns the descriptor with the given hash, or nil.
func findFile(files []*models.FileDescriptor, fileHash string) *models.FileDescriptor {
	for _, f := range files {
		if f != nil && f.FileHash == fileHash {
			return f
		}
	}
	return nil
}
