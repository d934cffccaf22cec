package ports

import "termnotes/internal/domain"

// BackupCatalog keeps an index of backups written by the store
type BackupCatalog interface {
	Record(rec domain.BackupRecord) error
	Count() (int, error)
	// Latest returns the most recent backup, or nil when none is recorded
	Latest() (*domain.BackupRecord, error)
	Close() error
}
