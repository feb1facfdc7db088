package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/draftly/backend/internal/infrastructure/export"
)

// Ensure LocalArtifactStorage implements ArtifactStore
var _ export.ArtifactStore = (*LocalArtifactStorage)(nil)

// LocalArtifactStorage writes export artifacts to a local directory.
// It is the fallback backend when object storage is disabled.
type LocalArtifactStorage struct {
	dir string
}

// NewLocalArtifactStorage creates a LocalArtifactStorage rooted at dir
func NewLocalArtifactStorage(dir string) (*LocalArtifactStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalArtifactStorage{dir: dir}, nil
}

// Upload writes the artifact to disk under the storage key.
func (l *LocalArtifactStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	path, err := l.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// GenerateDownloadURL returns a file URL for the stored artifact.
// Local artifacts do not expire.
func (l *LocalArtifactStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	path, err := l.resolve(storageKey)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return "", time.Time{}, fmt.Errorf("artifact not found: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", time.Time{}, err
	}
	return "file://" + filepath.ToSlash(abs), time.Time{}, nil
}

// DeleteObject removes a stored artifact. Missing files are not an error.
func (l *LocalArtifactStorage) DeleteObject(ctx context.Context, storageKey string) error {
	path, err := l.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// ObjectExists checks if an artifact exists on disk.
func (l *LocalArtifactStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	path, err := l.resolve(storageKey)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// resolve maps a storage key to a path inside the root directory and
// rejects keys that would escape it.
func (l *LocalArtifactStorage) resolve(storageKey string) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}
	cleaned := filepath.Clean(filepath.FromSlash(storageKey))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", errors.New("invalid storage key")
	}
	return filepath.Join(l.dir, cleaned), nil
}
