package secondary

import "context"

// ArtifactStore defines the secondary port for the filesystem that receives report artifacts.
type ArtifactStore interface {
	// EnsureDir creates dir (and parents) when missing.
	EnsureDir(ctx context.Context, dir string) error

	// Exists reports whether a regular, non-empty file exists at path.
	Exists(ctx context.Context, path string) (bool, error)
}
