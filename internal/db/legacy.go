package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LegacyTable describes one table of a database written by the first-generation app.
type LegacyTable struct {
	Name   string
	Target string
	Rows   int
}

var legacyTables = []struct {
	name   string
	target string
	count  string
}{
	{name: "opcoes", target: "options", count: "SELECT COUNT(*) FROM opcoes"},
	{name: "rotina_itens", target: "checklist_items", count: "SELECT COUNT(*) FROM rotina_itens"},
	{name: "historico", target: "history", count: "SELECT COUNT(*) FROM historico"},
	{name: "rascunho", target: "drafts", count: "SELECT COUNT(*) FROM rascunho"},
}

// InspectLegacy opens the legacy file at path read-only and reports the tables it holds.
func InspectLegacy(path string) ([]LegacyTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}

	conn, err := sql.Open(DriverName, "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}
	defer conn.Close()

	var tables []LegacyTable
	for _, lt := range legacyTables {
		exists, err := tableExists(conn, lt.name)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect legacy database: %w", err)
		}
		if !exists {
			continue
		}
		t := LegacyTable{Name: lt.name, Target: lt.target}
		if err := conn.QueryRow(lt.count).Scan(&t.Rows); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", lt.name, err)
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%s has none of the legacy tables", path)
	}
	return tables, nil
}

// ImportLegacy seeds a new database at dest from the legacy file at src.
// The legacy file is copied and upgraded in place by the regular migrations; src is not modified.
// dest must not exist yet.
func ImportLegacy(src, dest string) (*sql.DB, error) {
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("database already exists at %s", dest)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to check %s: %w", dest, err)
	}

	if _, err := InspectLegacy(src); err != nil {
		return nil, err
	}

	if err := copyFile(src, dest); err != nil {
		return nil, err
	}

	conn, err := Open(dest)
	if err != nil {
		os.Remove(dest)
		return nil, err
	}
	return conn, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open legacy database: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("failed to copy legacy database: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("failed to copy legacy database: %w", err)
	}
	return nil
}
