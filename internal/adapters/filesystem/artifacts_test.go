package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/rounds/internal/adapters/filesystem"
)

func TestArtifactStore_EnsureDir(t *testing.T) {
	store := filesystem.NewArtifactStore()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "reports", "2026")

	if err := store.EnsureDir(ctx, dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}

	// Existing directory is fine
	if err := store.EnsureDir(ctx, dir); err != nil {
		t.Errorf("second EnsureDir failed: %v", err)
	}
}

func TestArtifactStore_Exists(t *testing.T) {
	store := filesystem.NewArtifactStore()
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name  string
		setup func() string
		want  bool
	}{
		{
			name:  "missing file",
			setup: func() string { return filepath.Join(dir, "missing.pdf") },
			want:  false,
		},
		{
			name: "written file",
			setup: func() string {
				path := filepath.Join(dir, "report.pdf")
				if err := os.WriteFile(path, []byte("%PDF-1.3"), 0644); err != nil {
					t.Fatal(err)
				}
				return path
			},
			want: true,
		},
		{
			name: "empty file",
			setup: func() string {
				path := filepath.Join(dir, "empty.pdf")
				if err := os.WriteFile(path, nil, 0644); err != nil {
					t.Fatal(err)
				}
				return path
			},
			want: false,
		},
		{
			name:  "directory",
			setup: func() string { return dir },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Exists(ctx, tt.setup())
			if err != nil {
				t.Fatalf("Exists failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists = %v, want %v", got, tt.want)
			}
		})
	}
}
