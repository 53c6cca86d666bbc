// Package filestore stores uploaded image blobs on local disk under
// generated unique names. The same process serves the files back as static
// content, so references are plain relative URL paths.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"laundry/internal/core/domain/model/kernel"
)

// Store writes uploads into a single directory and hands back the URL path
// under which the file is served.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates the upload directory if needed.
// urlPrefix is the public mount point of the directory, e.g. "uploads".
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:       dir,
		urlPrefix: urlPrefix,
	}, nil
}

// Save writes the content under "<uuid>_<base name>" and returns the
// reference path to persist. The original name is reduced to its base so a
// crafted filename cannot escape the upload directory.
func (s *Store) Save(originalName string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", kernel.NewUUID(), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Dir returns the directory the store writes into, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
