package connector

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/airtable/internal/constants"
)

// Storage persists fetched rows outside the action output, for result
// sets too large to carry inline. Store returns a URI for the written
// object.
type Storage interface {
	Store(ctx context.Context, name string, r io.Reader) (string, error)
}

// FileStorage stores objects as files under a base directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir. The
// directory is created on first Store.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Store writes the object and returns a file:// URI.
func (s *FileStorage) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("storing %q: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating storage directory: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.OutputFilePerm)
	if err != nil {
		return "", fmt.Errorf("creating storage file: %w", err)
	}

	_, err = io.Copy(file, r)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return "", fmt.Errorf("writing storage file: %w", err)
	}

	return "file://" + path, nil
}
