// Package db owns the SQLite storage handle: opening, connection discipline and schema.
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// Open opens (creating if needed) the SQLite file at path and brings its schema up to date.
//
// The returned handle allows a single open connection. Every statement and transaction issued
// through it is therefore serialized, which is the single-writer discipline the draft store,
// the catalog and the ordering engine rely on.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}

// dsn applies per-connection pragmas. synchronous=FULL makes every autosave durable on return.
func dsn(path string) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", "5000")
	q.Set("_journal_mode", "WAL")
	q.Set("_synchronous", "FULL")
	return "file:" + path + "?" + q.Encode()
}
