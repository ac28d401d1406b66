// Package storage provides durable backends for the named slots the
// stores persist themselves into.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteSlots keeps slot payloads in a single-table SQLite database.
type SQLiteSlots struct {
	db *sql.DB
}

func NewSQLiteSlots(dbPath string) (*SQLiteSlots, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteSlots{db: db}, nil
}

func (s *SQLiteSlots) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the payload last saved under name. ok is false when the
// slot has never been written.
func (s *SQLiteSlots) Load(ctx context.Context, name string) ([]byte, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", name, err)
	}
	return []byte(data), true, nil
}

// Save replaces the payload stored under name.
func (s *SQLiteSlots) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save slot %s: %w", name, err)
	}
	return nil
}
