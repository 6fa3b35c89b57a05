package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"log-dashboard/internal/models"
	"log-dashboard/internal/shared/filestorages"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore keeps the last successfully computed metrics snapshot per user and file.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Put(ctx context.Context, username, fileHash string, snapshot *models.MetricsSnapshot) error
	// Get returns ErrSnapshotNotFound when nothing was stored for the pair.
	Get(ctx context.Context, username, fileHash string) (*models.MetricsSnapshot, error)
	// Delete is idempotent.
	Delete(ctx context.Context, username, fileHash string) error
}

type fileSnapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewFileSnapshotStore(fileStorage filestorages.FileStorage) SnapshotStore {
	return &fileSnapshotStore{fileStorage: fileStorage, dir: "snapshots"}
}

func (s *fileSnapshotStore) Put(ctx context.Context, username, fileHash string, snapshot *models.MetricsSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(username, fileHash), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

func (s *fileSnapshotStore) Get(ctx context.Context, username, fileHash string) (*models.MetricsSnapshot, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(username, fileHash))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *fileSnapshotStore) Delete(ctx context.Context, username, fileHash string) error {
	err := s.fileStorage.Delete(ctx, s.getKey(username, fileHash))
	if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (s *fileSnapshotStore) getKey(username, fileHash string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, url.PathEscape(username), url.PathEscape(fileHash))
}
