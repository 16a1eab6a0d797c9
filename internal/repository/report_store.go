package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileReportStore writes reports into a directory.
type FileReportStore struct {
	dir string
}

// NewFileReportStore creates a new FileReportStore.
func NewFileReportStore(dir string) *FileReportStore {
	return &FileReportStore{dir: dir}
}

// SaveReport writes content to dir/name and returns the path.
func (s *FileReportStore) SaveReport(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", name, err)
	}
	return path, nil
}
