package fileactions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/stores"
)

type viewAction struct {
	dashboardPath string
}

// NewViewAction redirects to the dashboard with the file preselected.
func NewViewAction(dashboardPath string) FileAction {
	return &viewAction{dashboardPath: dashboardPath}
}

func (a *viewAction) Name() ActionName { return ActionView }

func (a *viewAction) Execute(ctx context.Context, sess *sessions.Session, file *models.FileDescriptor) (*ActionResult, error) {
	return &ActionResult{
		Kind:        ResultRedirect,
		RedirectURL: a.dashboardPath + "?upload=" + url.QueryEscape(file.FileHash),
	}, nil
}

type downloadAction struct {
	backend logsources.BackendClient
}

// NewDownloadAction exports the parsed log entries of a file as a JSON attachment.
func NewDownloadAction(backend logsources.BackendClient) FileAction {
	return &downloadAction{backend: backend}
}

func (a *downloadAction) Name() ActionName { return ActionDownload }

func (a *downloadAction) Execute(ctx context.Context, sess *sessions.Session, file *models.FileDescriptor) (*ActionResult, error) {
	logs, err := a.backend.GetLogs(ctx, sess, file.FileHash)
	if err != nil {
		return nil, errBackend(err)
	}
	body, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return nil, errInternalActionFailed(ActionDownload, err)
	}
	return &ActionResult{
		Kind:        ResultAttachment,
		FileName:    attachmentName(file),
		ContentType: "application/json",
		Body:        body,
	}, nil
}

type deleteAction struct {
	snapshots stores.SnapshotStore
}

// NewDeleteAction forgets what the dashboard remembers about a file. The uploaded file itself
// stays on the backend, which offers no way to remove it.
func NewDeleteAction(snapshots stores.SnapshotStore) FileAction {
	return &deleteAction{snapshots: snapshots}
}

func (a *deleteAction) Name() ActionName { return ActionDelete }

func (a *deleteAction) Execute(ctx context.Context, sess *sessions.Session, file *models.FileDescriptor) (*ActionResult, error) {
	if err := a.snapshots.Delete(ctx, sess.Username, file.FileHash); err != nil {
		return nil, errInternalActionFailed(ActionDelete, err)
	}
	notification := models.NewInfoNotification("File removed from dashboard",
		fmt.Sprintf("Cached metrics for %s have been cleared.", file.FileName))
	return &ActionResult{Kind: ResultNotification, Notification: &notification}, nil
}

func attachmentName(file *models.FileDescriptor) string {
	name := strings.TrimSpace(file.FileName)
	if name == "" {
		name = file.FileHash
	}
	return name + ".json"
}
