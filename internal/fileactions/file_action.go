package fileactions

import (
	"context"

	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
)

type ActionName string

const (
	ActionView     ActionName = "view"
	ActionDownload ActionName = "download"
	ActionDelete   ActionName = "delete"
)

type ResultKind string

const (
	ResultRedirect     ResultKind = "redirect"
	ResultAttachment   ResultKind = "attachment"
	ResultNotification ResultKind = "notification"
)

// ActionResult tells the transport how to answer. Only the fields of its Kind are set.
type ActionResult struct {
	Kind         ResultKind
	RedirectURL  string
	FileName     string
	ContentType  string
	Body         []byte
	Notification *models.Notification
}

// FileAction is one operation offered on an uploaded file.
//
//go:generate mockgen -source=file_action.go -destination=./mocks/file_action_mock.go -package=mocks
type FileAction interface {
	Name() ActionName
	Execute(ctx context.Context, sess *sessions.Session, file *models.FileDescriptor) (*ActionResult, error)
}
