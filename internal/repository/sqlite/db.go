// Package sqlite implements the repository interfaces on top of an
// embedded SQLite database (ncruces/go-sqlite3, cgo-free).
//
// Each collection is stored document-style: the full record as a JSON
// document plus a primary key column, with expression indexes over the
// fields the application filters on. The database lives in a single
// local file so the application keeps working with no network at all.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB wraps the shared database connection. The composition root
// constructs exactly one DB per process and hands it to every
// repository; no collaborator holds a private copy.
type DB struct {
	conn *sql.DB
	path string
}

// Open creates (or opens) the database file at path and prepares the
// connection for local single-user access.
//
// The caller MUST call Close() when done.
func Open(path string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn, path: path}

	// WAL keeps readers unblocked during writes.
	if _, err := db.conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// InitSchema creates every collection table and index. It is idempotent:
// creating a collection that already exists is a no-op, so it is safe to
// invoke on every startup.
func (db *DB) InitSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exercises (
			id TEXT PRIMARY KEY,
			doc TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exercises_nome ON exercises (json_extract(doc, '$.nome'))`,
		`CREATE INDEX IF NOT EXISTS idx_exercises_nivel ON exercises (json_extract(doc, '$.nivel'))`,
		`CREATE INDEX IF NOT EXISTS idx_exercises_equipamento ON exercises (json_extract(doc, '$.equipamento'))`,
		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			doc TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_nome ON workouts (json_extract(doc, '$.nome'))`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_data_planejada ON workouts (json_extract(doc, '$.dataPlanejada'))`,
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			doc TEXT NOT NULL,
			workout_id TEXT NOT NULL,
			data_realizada TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_workout_id ON logs (workout_id)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_data_realizada ON logs (data_realizada)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			doc TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// mergeDoc shallow-merges partial fields over an existing JSON document.
// The document key and updatedAt are owned by the store: the merged
// document always keeps the row id and gets a fresh updatedAt stamp.
func mergeDoc(doc []byte, fields map[string]any, id any, now time.Time) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	for k, v := range fields {
		m[k] = v
	}
	m["id"] = id
	m["updatedAt"] = now.Format(time.RFC3339Nano)
	merged, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged document: %w", err)
	}
	return merged, nil
}
