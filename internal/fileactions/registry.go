package fileactions

import (
	"context"
	"sort"

	"log-dashboard/internal/logsources"
	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/metrics"
	"log-dashboard/internal/shared/svcerrors"
)

//go:generate mockgen -source=registry.go -destination=./mocks/registry_mock.go -package=mocks
type Registry interface {
	// Run resolves fileHash among the session's files and executes the named action on it.
	Run(ctx context.Context, sess *sessions.Session, name ActionName, fileHash string) (*ActionResult, error)
	Names() []ActionName
}

type registry struct {
	backend logsources.BackendClient
	actions map[ActionName]FileAction
}

func NewRegistry(backend logsources.BackendClient, actions ...FileAction) Registry {
	r := &registry{
		backend: backend,
		actions: make(map[ActionName]FileAction, len(actions)),
	}
	for _, action := range actions {
		r.actions[action.Name()] = action
	}
	return r
}

func (r *registry) Names() []ActionName {
	names := make([]ActionName, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (r *registry) Run(ctx context.Context, sess *sessions.Session, name ActionName, fileHash string) (*ActionResult, error) {
	// unknown names come from the URL and must not become label values
	label := string(name)
	if _, ok := r.actions[name]; !ok {
		label = "unknown"
	}

	result, err := r.run(ctx, sess, name, fileHash)
	if err != nil {
		code := metrics.ValueNoError
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			code = svcErr.Code
		}
		metricFileActionsTotal.WithLabelValues(label, code).Inc()
		return nil, err
	}
	metricFileActionsTotal.WithLabelValues(label, metrics.ValueNoError).Inc()
	return result, nil
}

func (r *registry) run(ctx context.Context, sess *sessions.Session, name ActionName, fileHash string) (*ActionResult, error) {
	action, ok := r.actions[name]
	if !ok {
		return nil, errUnknownAction(name)
	}

	files, err := r.backend.ListFiles(ctx, sess)
	if err != nil {
		return nil, errBackend(err)
	}
	var file *models.FileDescriptor
	for _, f := range files {
		if f != nil && f.FileHash == fileHash {
			file = f
			break
		}
	}
	if file == nil {
		return nil, errFileNotFound(fileHash)
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldAction, string(name)).
		Str(loggers.FieldFileHash, fileHash).
		Msg("Running file action")
	return action.Execute(ctx, sess, file)
}
