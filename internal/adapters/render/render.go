// Package render turns route session snapshots into report documents.
package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/rounds/internal/core/snapshot"
)

// Header labels shared by every renderer.
const (
	labelDate    = "Date"
	labelLeader  = "Leader"
	labelMachine = "Machine"
	labelShift   = "Shift"
	labelRoute   = "Route"
	labelItem    = "Item"
	labelNote    = "Observation"
	noItemsText  = "No checklist items."
)

// photoTypes maps the accepted photo extensions to the decoder name image.DecodeConfig reports.
var photoTypes = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif",
}

// writeFile runs write against a temporary sibling of dest and links it into place.
// dest is never replaced: when it already exists the error matches fs.ErrExist and the
// existing file is left untouched. The temporary name keeps dest's extension because some
// writers choose the format from it.
func writeFile(dest string, write func(tmp string) error) (string, error) {
	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(filepath.Base(dest), ext)

	f, err := os.CreateTemp(filepath.Dir(dest), "."+stem+".*.part"+ext)
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	f.Close()
	defer os.Remove(tmp)

	if err := write(tmp); err != nil {
		return "", err
	}
	if err := os.Link(tmp, dest); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("report %s already exists: %w", dest, fs.ErrExist)
		}
		return "", fmt.Errorf("failed to move report into place: %w", err)
	}
	return dest, nil
}

// checkPhoto verifies that path is a decodable image whose content matches its extension.
func checkPhoto(path string) error {
	want, ok := photoTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("unsupported photo type %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("unreadable photo: %w", err)
	}
	if format != want {
		return fmt.Errorf("photo holds %s data but is named %s", format, filepath.Base(path))
	}
	return nil
}

// embeddablePhoto reports whether the item's photo can go into a report.
// Photos that cannot are logged and left out; they never fail the report.
func embeddablePhoto(logger *slog.Logger, item snapshot.Item) bool {
	if item.PhotoPath == "" {
		return false
	}
	if err := checkPhoto(item.PhotoPath); err != nil {
		logger.Warn("photo skipped", "item", item.Title, "path", item.PhotoPath, "error", err)
		return false
	}
	return true
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
