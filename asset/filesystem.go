package asset

import (
	"context"
	"fmt"
	"os"
)

// FilesystemSource reads the data asset from a local path inside the bundle.
// This is the default source for both local runs and bundled deployments.
type FilesystemSource struct {
	path string
}

// NewFilesystemSource returns a source for an existing local file.
func NewFilesystemSource(path string) (*FilesystemSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return &FilesystemSource{path: path}, nil
}

func (f *FilesystemSource) Location() string {
	return f.path
}

func (f *FilesystemSource) Fetch(ctx context.Context) ([]byte, error) {
	return os.ReadFile(f.path)
}
