package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests load it through
// GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a column referenced by
// repository code but missing here fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Run `go test ./...` to verify alignment
const SchemaSQL = `
-- Options (categorized reference data: leaders, machines, shifts, routes)
CREATE TABLE IF NOT EXISTS options (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL CHECK(category IN ('leader', 'machine', 'shift', 'route')),
	name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_options_category ON options(category, id);

-- Checklist items (ordered route checklist)
CREATE TABLE IF NOT EXISTS checklist_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_order ON checklist_items(sort_order, id);

-- History (append-only ledger of generated reports)
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	info TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Drafts (autosaved session fields)
CREATE TABLE IF NOT EXISTS drafts (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT '',
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates or upgrades the schema. It is safe to call on every startup.
func InitSchema(db *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	versioned, err := tableExists(db, "schema_version")
	if err != nil {
		return err
	}
	if versioned {
		return RunMigrations(db)
	}

	// Unversioned but populated: an older rounds build or a database from the original app.
	// Migrations upgrade it in place without dropping rows.
	var existing int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table'
		AND name IN ('options', 'checklist_items', 'history', 'drafts', 'opcoes', 'rotina_itens', 'historico', 'rascunho')`).Scan(&existing)
	if err != nil {
		return err
	}
	if existing > 0 {
		return RunMigrations(db)
	}

	// Completely fresh install - create modern schema directly and mark all migrations applied
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := ensureVersionTable(tx); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func tableExists(q queryer, name string) (bool, error) {
	var n int
	err := q.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func columnExists(q queryer, table, column string) (bool, error) {
	var n int
	err := q.QueryRow("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
