package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"termnotes/internal/domain"
	"termnotes/internal/ports"
)

// CatalogFileName is the database file kept next to the snapshot
const CatalogFileName = "backups.db"

// Catalog implements ports.BackupCatalog using SQLite
type Catalog struct {
	db *sql.DB
}

// Ensure Catalog implements BackupCatalog
var _ ports.BackupCatalog = (*Catalog)(nil)

// OpenCatalog opens (creating if needed) the catalog in dataDir
func OpenCatalog(dataDir string) (*Catalog, error) {
	dbPath := filepath.Join(dataDir, CatalogFileName)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS backups (
			path TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			notes INTEGER NOT NULL,
			todos INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_backups_created ON backups(created_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Record stores a backup entry, replacing any entry with the same path
func (c *Catalog) Record(rec domain.BackupRecord) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO backups (path, created_at, notes, todos)
		VALUES (?, ?, ?, ?)
	`, rec.Path, rec.CreatedAt, rec.Notes, rec.Todos)
	if err != nil {
		return fmt.Errorf("failed to record backup: %w", err)
	}
	return nil
}

// Count returns the number of recorded backups
func (c *Catalog) Count() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM backups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count backups: %w", err)
	}
	return n, nil
}

// Latest returns the newest backup, or nil when the catalog is empty
func (c *Catalog) Latest() (*domain.BackupRecord, error) {
	var rec domain.BackupRecord
	err := c.db.QueryRow(`
		SELECT path, created_at, notes, todos
		FROM backups
		ORDER BY created_at DESC, path DESC
		LIMIT 1
	`).Scan(&rec.Path, &rec.CreatedAt, &rec.Notes, &rec.Todos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest backup: %w", err)
	}
	return &rec, nil
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
