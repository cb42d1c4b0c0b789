// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/example/rounds/internal/ports/secondary"
)

// ArtifactStore implements secondary.ArtifactStore on the local filesystem.
type ArtifactStore struct{}

// NewArtifactStore creates a new filesystem artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// EnsureDir creates a directory with all parent directories.
func (a *ArtifactStore) EnsureDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Exists checks that a non-empty regular file is present at path.
func (a *ArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check artifact: %w", err)
	}
	return info.Mode().IsRegular() && info.Size() > 0, nil
}

// Ensure ArtifactStore implements the interface
var _ secondary.ArtifactStore = (*ArtifactStore)(nil)
