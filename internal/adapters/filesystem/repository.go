package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"

	"termnotes/internal/domain"
)

const (
	// DataFileName is the primary snapshot file inside the data directory
	DataFileName = "data.json"

	backupPrefix    = "backup_"
	backupTimestamp = "20060102_150405"
	filePerm        = 0o600
	dirPerm         = 0o755
)

// Repository implements ports.SnapshotRepository using JSON files
type Repository struct {
	dataDir string
	now     func() time.Time
}

// NewRepository creates a new filesystem repository rooted at dataDir
func NewRepository(dataDir string) *Repository {
	return &Repository{dataDir: expandHome(dataDir), now: time.Now}
}

// WithClock overrides the clock used for backup file names
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Path returns the location of the primary snapshot
func (r *Repository) Path() string {
	return filepath.Join(r.dataDir, DataFileName)
}

// Load reads the primary snapshot. A missing file is an empty snapshot.
func (r *Repository) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(r.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Path(), err)
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, &domain.DecodeError{Path: r.Path(), Err: err}
	}
	return snap, nil
}

// Save writes snap to the primary file atomically
func (r *Repository) Save(snap *domain.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dataDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return writeFileAtomic(r.Path(), data, filePerm)
}

// Backup writes snap to backup_<timestamp>.json in the data directory.
// A numeric suffix is added when a backup with the same second exists.
func (r *Repository) Backup(snap *domain.Snapshot) (string, error) {
	data, err := Encode(snap)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dataDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	stamp := r.now().Format(backupTimestamp)
	for attempt := 0; ; attempt++ {
		name := backupPrefix + stamp + ".json"
		if attempt > 0 {
			name = fmt.Sprintf("%s%s-%d.json", backupPrefix, stamp, attempt)
		}
		path := filepath.Join(r.dataDir, name)

		err := writeFileExclusive(path, data, filePerm)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}
}

// Preserve copies the primary file to data.json<suffix> without touching
// the original. Used to keep a corrupt snapshot before starting empty.
func (r *Repository) Preserve(suffix string) (string, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", r.Path(), err)
	}
	dst := r.Path() + suffix
	if err := writeFileExclusive(dst, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to preserve %s: %w", r.Path(), err)
	}
	return dst, nil
}

// Encode serializes a snapshot as indented JSON
func Encode(snap *domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses snapshot JSON, rejecting unknown fields and broken
// invariants
func Decode(data []byte) (*domain.Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty file")
	}
	if trimmed[0] != '{' {
		return nil, errors.New("snapshot must be a JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var snap domain.Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after snapshot")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	snap.Normalize()
	return &snap, nil
}

// expandHome resolves a leading ~; paths it cannot expand are kept as given
func expandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
