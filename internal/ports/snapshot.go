package ports

import "termnotes/internal/domain"

// SnapshotRepository defines the interface for snapshot storage
type SnapshotRepository interface {
	// Load reads the primary snapshot. A missing file yields an empty
	// snapshot and no error.
	Load() (*domain.Snapshot, error)

	// Save replaces the primary snapshot atomically
	Save(snap *domain.Snapshot) error

	// Backup writes snap to a new timestamped file and returns its path.
	// Existing backups are never overwritten.
	Backup(snap *domain.Snapshot) (string, error)

	// Preserve copies the primary file aside, returning the copy's path
	Preserve(suffix string) (string, error)

	// Path returns the location of the primary snapshot
	Path() string
}

// Exporter renders and writes a snapshot in a textual format
type Exporter interface {
	// Export writes snap in the given format and returns the file path
	Export(snap *domain.Snapshot, format domain.ExportFormat) (string, error)
}
