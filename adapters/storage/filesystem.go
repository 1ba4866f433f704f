package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/repositories"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// FileSystemStore keeps output files in one flat directory
type FileSystemStore struct {
	dir    string
	logger *zap.Logger
}

var _ repositories.OutputStore = (*FileSystemStore)(nil)

// NewFileSystemStore creates the directory if needed
func NewFileSystemStore(dir string, logger *zap.Logger) (*FileSystemStore, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &FileSystemStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes a new file. The file must not exist yet.
func (s *FileSystemStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(name)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", name, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write output file %s: %w", name, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close output file %s: %w", name, err)
	}

	s.logger.Debug("Stored output file", zap.String("name", name), zap.Int("size", len(data)))
	return nil
}

// Open returns the content of a stored file
func (s *FileSystemStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("output file %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open output file %s: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat output file %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("output file %s: %w", name, domain.ErrNotFound)
	}

	return file, nil
}

// path keeps every name inside the store directory
func (s *FileSystemStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("output file %q: %w", name, domain.ErrInvalidInput)
	}
	return filepath.Join(s.dir, name), nil
}
