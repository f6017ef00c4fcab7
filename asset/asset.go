// Package asset resolves and fetches the read-only habitat index data asset.
// The asset is placed into the deployment bundle at build time (or hosted on
// S3); the function only ever reads it.
package asset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazishark/mazishark/constants"
)

// ErrNotFound reports that no data asset exists at any candidate location.
// This is a configuration error: the bundle was built without the asset, or
// DATA_PATH points somewhere empty.
var ErrNotFound = errors.New("data asset not found")

// Source is a read-only handle to the data asset.
type Source interface {
	// Location identifies the asset for logs and responses.
	Location() string
	// Fetch reads the entire asset.
	Fetch(ctx context.Context) ([]byte, error)
}

// Resolve returns a Source for the data asset. A non-empty override (from
// DATA_PATH or a CLI flag) is authoritative: an s3:// URL yields an S3 source,
// anything else must be an existing local file. With no override, the default
// candidate locations inside the bundle are searched in order.
func Resolve(ctx context.Context, override string) (Source, error) {
	if override != "" {
		if strings.HasPrefix(override, "s3://") {
			return NewS3Source(ctx, override)
		}
		if _, err := os.Stat(override); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, override)
		}
		return &FilesystemSource{path: override}, nil
	}

	candidates := DefaultCandidates()
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return &FilesystemSource{path: p}, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

// DefaultCandidates lists the relative locations searched when no override is
// set: the working directory, the bundled data directory, and the directories
// around the executable.
func DefaultCandidates() []string {
	candidates := []string{
		constants.DataFilename,
		constants.DefaultDataPath,
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, constants.DataFilename),
			filepath.Join(dir, constants.DefaultDataDir, constants.DataFilename),
			filepath.Join(dir, "..", constants.DefaultDataDir, constants.DataFilename),
		)
	}
	return candidates
}
