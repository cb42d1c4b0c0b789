// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB() and
// the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/rounds/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// The pool is pinned to one connection: every new connection to ":memory:" would
// otherwise see its own empty database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedChecklistItem inserts a checklist item with an explicit order and returns its ID.
func seedChecklistItem(t *testing.T, db *sql.DB, title string, order int) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO checklist_items (title, sort_order) VALUES (?, ?)", title, order)
	if err != nil {
		t.Fatalf("failed to seed checklist item: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded id: %v", err)
	}
	return id
}

// seedOption inserts an option and returns its ID.
func seedOption(t *testing.T, db *sql.DB, category, name string) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO options (category, name) VALUES (?, ?)", category, name)
	if err != nil {
		t.Fatalf("failed to seed option: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded id: %v", err)
	}
	return id
}

// itemTitles returns the checklist titles in (order, id) order.
func itemTitles(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT title FROM checklist_items ORDER BY sort_order ASC, id ASC")
	if err != nil {
		t.Fatalf("failed to query titles: %v", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			t.Fatalf("failed to scan title: %v", err)
		}
		titles = append(titles, title)
	}
	return titles
}
