package fileactions_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"log-dashboard/internal/fileactions"
	actionmocks "log-dashboard/internal/fileactions/mocks"
	"log-dashboard/internal/logsources"
	sourcemocks "log-dashboard/internal/logsources/mocks"
	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/svcerrors"
	storemocks "log-dashboard/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = &sessions.Session{
	ID:            "01J0000000000000000000000A",
	Username:      "alice@example.com",
	AccessToken:   "token",
	Authenticated: true,
}

var testFiles = []*models.FileDescriptor{
	{FileHash: "h1", FileName: "access.log"},
	{FileHash: "h2", FileName: ""},
}

func requireServiceError(t *testing.T, err error, code, category string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := sourcemocks.NewMockBackendClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)

	registry := fileactions.NewRegistry(backend,
		fileactions.NewViewAction("/dashboard"),
		fileactions.NewDownloadAction(backend),
		fileactions.NewDeleteAction(snapshots),
	)

	assert.Equal(t, []fileactions.ActionName{"delete", "download", "view"}, registry.Names())
}

func TestRegistry_Run_View(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := sourcemocks.NewMockBackendClient(ctrl)
	backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil)

	registry := fileactions.NewRegistry(backend, fileactions.NewViewAction("/dashboard"))
	result, err := registry.Run(context.Background(), testSession, fileactions.ActionView, "h1")
	require.NoError(t, err)
	assert.Equal(t, fileactions.ResultRedirect, result.Kind)
	assert.Equal(t, "/dashboard?upload=h1", result.RedirectURL)
}

func TestRegistry_Run_Download(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := sourcemocks.NewMockBackendClient(ctrl)
	status := 200
	logs := []*models.LogEntry{{ID: 1, FileHash: "h1", Timestamp: "2024-01-15T10:00:00", Status: &status}}

	backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil).Times(2)
	backend.EXPECT().GetLogs(gomock.Any(), testSession, "h1").Return(logs, nil)
	backend.EXPECT().GetLogs(gomock.Any(), testSession, "h2").Return([]*models.LogEntry{}, nil)

	registry := fileactions.NewRegistry(backend, fileactions.NewDownloadAction(backend))

	result, err := registry.Run(context.Background(), testSession, fileactions.ActionDownload, "h1")
	require.NoError(t, err)
	assert.Equal(t, fileactions.ResultAttachment, result.Kind)
	assert.Equal(t, "access.log.json", result.FileName)
	assert.Equal(t, "application/json", result.ContentType)

	var decoded []*models.LogEntry
	require.NoError(t, json.Unmarshal(result.Body, &decoded))
	assert.Equal(t, logs, decoded)

	result, err = registry.Run(context.Background(), testSession, fileactions.ActionDownload, "h2")
	require.NoError(t, err)
	assert.Equal(t, "h2.json", result.FileName)
	assert.JSONEq(t, "[]", string(result.Body))
}

func TestRegistry_Run_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	backend := sourcemocks.NewMockBackendClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)

	backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil)
	snapshots.EXPECT().Delete(gomock.Any(), "alice@example.com", "h1").Return(nil)

	registry := fileactions.NewRegistry(backend, fileactions.NewDeleteAction(snapshots))
	result, err := registry.Run(context.Background(), testSession, fileactions.ActionDelete, "h1")
	require.NoError(t, err)
	assert.Equal(t, fileactions.ResultNotification, result.Kind)
	require.NotNil(t, result.Notification)
	assert.Equal(t, "File removed from dashboard", result.Notification.Title)
	assert.Contains(t, result.Notification.Description, "access.log")
}

func TestRegistry_Run_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		backend := sourcemocks.NewMockBackendClient(ctrl)

		registry := fileactions.NewRegistry(backend, fileactions.NewViewAction("/dashboard"))
		_, err := registry.Run(context.Background(), testSession, "rename", "h1")
		requireServiceError(t, err, "ACT_1000", "not_found")
	})

	t.Run("unknown file", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		backend := sourcemocks.NewMockBackendClient(ctrl)
		action := actionmocks.NewMockFileAction(ctrl)
		action.EXPECT().Name().Return(fileactions.ActionView).AnyTimes()
		action.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil)

		registry := fileactions.NewRegistry(backend, action)
		_, err := registry.Run(context.Background(), testSession, fileactions.ActionView, "missing")
		requireServiceError(t, err, "ACT_1001", "not_found")
	})

	t.Run("backend rejects session", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		backend := sourcemocks.NewMockBackendClient(ctrl)
		backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(nil, logsources.ErrBackendUnauthorized)

		registry := fileactions.NewRegistry(backend, fileactions.NewViewAction("/dashboard"))
		_, err := registry.Run(context.Background(), testSession, fileactions.ActionView, "h1")
		requireServiceError(t, err, "ACT_1002", "unauthenticated")
	})

	t.Run("backend unavailable during download", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		backend := sourcemocks.NewMockBackendClient(ctrl)
		backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil)
		backend.EXPECT().GetLogs(gomock.Any(), testSession, "h1").Return(nil, logsources.ErrBackendUnavailable)

		registry := fileactions.NewRegistry(backend, fileactions.NewDownloadAction(backend))
		_, err := registry.Run(context.Background(), testSession, fileactions.ActionDownload, "h1")
		requireServiceError(t, err, "ACT_9000", "upstream")
	})

	t.Run("snapshot store failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		backend := sourcemocks.NewMockBackendClient(ctrl)
		snapshots := storemocks.NewMockSnapshotStore(ctrl)
		backend.EXPECT().ListFiles(gomock.Any(), testSession).Return(testFiles, nil)
		snapshots.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		registry := fileactions.NewRegistry(backend, fileactions.NewDeleteAction(snapshots))
		_, err := registry.Run(context.Background(), testSession, fileactions.ActionDelete, "h1")
		requireServiceError(t, err, "ACT_9001", "internal")
	})
}
