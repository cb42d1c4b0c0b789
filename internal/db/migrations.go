package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_core_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_sort_order_to_checklist_items",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "import_legacy_tables",
		Up:      migrationV3,
	},
}

// RunMigrations executes all pending migrations, each in its own transaction.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(versionTableSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}
		if err := applyMigration(db, migration); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
	}
	defer tx.Rollback()

	if err := m.Up(tx); err != nil {
		return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
	}

	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// CurrentVersion returns the highest applied migration version.
func CurrentVersion(db *sql.DB) (int, error) {
	var v int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	return v, err
}

const versionTableSQL = `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)
`

func ensureVersionTable(tx *sql.Tx) error {
	_, err := tx.Exec(versionTableSQL)
	return err
}

// migrationV1 creates the four core tables. Existing tables are left untouched.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS options (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL CHECK(category IN ('leader', 'machine', 'shift', 'route')),
			name TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_options_category ON options(category, id);

		CREATE TABLE IF NOT EXISTS checklist_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			info TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS drafts (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// migrationV2 adds sort_order to checklist tables created before ordering existed.
// Existing rows default to 0 and keep their relative order through the id tie-break.
func migrationV2(tx *sql.Tx) error {
	has, err := columnExists(tx, "checklist_items", "sort_order")
	if err != nil {
		return err
	}
	if !has {
		if _, err := tx.Exec("ALTER TABLE checklist_items ADD COLUMN sort_order INTEGER NOT NULL DEFAULT 0"); err != nil {
			return err
		}
	}
	_, err = tx.Exec("CREATE INDEX IF NOT EXISTS idx_checklist_items_order ON checklist_items(sort_order, id)")
	return err
}

// migrationV3 copies rows written by the first-generation app (Portuguese table names) into
// the core tables. A target table that already holds rows is never overwritten.
func migrationV3(tx *sql.Tx) error {
	imports := []struct {
		legacy string
		count  string
		query  string
	}{
		{
			legacy: "opcoes",
			count:  "SELECT COUNT(*) FROM options",
			query: `INSERT INTO options (id, category, name)
				SELECT id,
					CASE tipo WHEN 'lider' THEN 'leader' WHEN 'maquina' THEN 'machine'
						WHEN 'turma' THEN 'shift' WHEN 'rota' THEN 'route' END,
					nome
				FROM opcoes
				WHERE tipo IN ('lider', 'maquina', 'turma', 'rota') AND TRIM(COALESCE(nome, '')) <> ''
				ORDER BY id`,
		},
		{
			legacy: "rotina_itens",
			count:  "SELECT COUNT(*) FROM checklist_items",
			query: `INSERT INTO checklist_items (id, title, sort_order)
				SELECT r.id, r.titulo, (SELECT COUNT(*) FROM rotina_itens p WHERE p.id < r.id)
				FROM rotina_itens r
				WHERE TRIM(COALESCE(r.titulo, '')) <> ''
				ORDER BY r.id`,
		},
		{
			legacy: "historico",
			count:  "SELECT COUNT(*) FROM history",
			query: `INSERT INTO history (id, date, info)
				SELECT id, COALESCE(data, ''), COALESCE(info, '') FROM historico ORDER BY id`,
		},
		{
			legacy: "rascunho",
			count:  "SELECT COUNT(*) FROM drafts",
			query: `INSERT INTO drafts (key, value)
				SELECT id, COALESCE(valor, '') FROM rascunho WHERE id IS NOT NULL`,
		},
	}

	for _, imp := range imports {
		exists, err := tableExists(tx, imp.legacy)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}

		var rows int
		if err := tx.QueryRow(imp.count).Scan(&rows); err != nil {
			return err
		}
		if rows > 0 {
			continue
		}

		if _, err := tx.Exec(imp.query); err != nil {
			return fmt.Errorf("failed to import %s: %w", imp.legacy, err)
		}
	}
	return nil
}
