package application

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"termnotes/internal/domain"
	"termnotes/internal/ports"
)

// MaxCount bounds how many entities a single create may add
const MaxCount = 1000

// Store owns the note and todo collections, tracks unsaved changes and
// persists snapshots through a ports.SnapshotRepository.
//
// A Store is not safe for concurrent use; it is driven from the single
// event loop.
type Store struct {
	repo     ports.SnapshotRepository
	exporter ports.Exporter
	catalog  ports.BackupCatalog
	logger   *slog.Logger
	now      func() time.Time

	snap     *domain.Snapshot
	savedSum [sha256.Size]byte
	dirty    bool
	revision uint64
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithLogger sets the logger used for mutations and I/O failures
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used for creation timestamps
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithCatalog records every backup in c
func WithCatalog(c ports.BackupCatalog) StoreOption {
	return func(s *Store) {
		s.catalog = c
	}
}

// NewStore creates an empty store. Call Load to read persisted data.
func NewStore(repo ports.SnapshotRepository, exporter ports.Exporter, opts ...StoreOption) *Store {
	s := &Store{
		repo:     repo,
		exporter: exporter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		snap:     domain.NewSnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.savedSum = fingerprint(s.snap)
	return s
}

// Load replaces the in-memory collections with the persisted snapshot.
// A missing file leaves the store empty. Malformed content yields a
// *CorruptDataError and leaves the store unchanged.
func (s *Store) Load() error {
	snap, err := s.repo.Load()
	if err != nil {
		var decodeErr *domain.DecodeError
		if errors.As(err, &decodeErr) {
			s.logger.Error("snapshot is corrupt", "path", decodeErr.Path, "error", decodeErr.Err)
			return &CorruptDataError{Path: decodeErr.Path, Err: decodeErr.Err}
		}
		s.logger.Error("load failed", "path", s.repo.Path(), "error", err)
		return &IOError{Op: "load", Path: s.repo.Path(), Err: err}
	}

	s.snap = snap
	s.savedSum = fingerprint(snap)
	s.revision++
	s.dirty = false
	s.logger.Info("snapshot loaded", "path", s.repo.Path(), "notes", len(snap.Notes), "todos", len(snap.Todos))
	return nil
}

// Save writes both collections atomically and clears the dirty flag.
// On failure the dirty flag is left as it was.
func (s *Store) Save() error {
	if err := s.repo.Save(s.snap); err != nil {
		s.logger.Error("save failed", "path", s.repo.Path(), "error", err)
		return &IOError{Op: "save", Path: s.repo.Path(), Err: err}
	}
	s.savedSum = fingerprint(s.snap)
	s.dirty = false
	s.logger.Info("snapshot saved", "path", s.repo.Path(), "notes", len(s.snap.Notes), "todos", len(s.snap.Todos))
	return nil
}

// Backup writes the current in-memory snapshot to a new timestamped file.
// The dirty flag and the primary file are not touched.
func (s *Store) Backup() (string, error) {
	path, err := s.repo.Backup(s.snap.Clone())
	if err != nil {
		s.logger.Error("backup failed", "error", err)
		return "", &IOError{Op: "backup", Err: err}
	}
	s.logger.Info("backup written", "path", path)

	if s.catalog != nil {
		rec := domain.BackupRecord{
			Path:      path,
			CreatedAt: s.now().Unix(),
			Notes:     len(s.snap.Notes),
			Todos:     len(s.snap.Todos),
		}
		if err := s.catalog.Record(rec); err != nil {
			// The backup file exists; a missing catalog row is not fatal
			s.logger.Warn("backup not catalogued", "path", path, "error", err)
		}
	}
	return path, nil
}

// BackupSummary reports the number of catalogued backups and the latest
func (s *Store) BackupSummary() (int, *domain.BackupRecord, error) {
	if s.catalog == nil {
		return 0, nil, &IOError{Op: "backup catalog", Err: errors.New("catalog disabled")}
	}
	n, err := s.catalog.Count()
	if err != nil {
		return 0, nil, &IOError{Op: "backup catalog", Err: err}
	}
	latest, err := s.catalog.Latest()
	if err != nil {
		return 0, nil, &IOError{Op: "backup catalog", Err: err}
	}
	return n, latest, nil
}

// Export renders both collections in format and returns the written path
func (s *Store) Export(format domain.ExportFormat) (string, error) {
	path, err := s.exporter.Export(s.snap.Clone(), format)
	if err != nil {
		s.logger.Error("export failed", "format", format.String(), "error", err)
		return "", &IOError{Op: "export " + format.String(), Err: err}
	}
	s.logger.Info("exported", "format", format.String(), "path", path)
	return path, nil
}

// PreserveCorrupt copies the unreadable primary file aside so that a later
// save cannot destroy it
func (s *Store) PreserveCorrupt() (string, error) {
	suffix := ".corrupt-" + s.now().Format("20060102_150405")
	path, err := s.repo.Preserve(suffix)
	if err != nil {
		return "", &IOError{Op: "preserve", Path: s.repo.Path(), Err: err}
	}
	s.logger.Warn("corrupt snapshot preserved", "copy", path)
	return path, nil
}

// Create appends count new entities of kind with default fields and
// returns their IDs in creation order
func (s *Store) Create(kind domain.Kind, count int) ([]domain.ID, error) {
	if count <= 0 || count > MaxCount {
		return nil, &CountError{Count: count, Max: MaxCount}
	}
	if kind != domain.KindNote && kind != domain.KindTodo {
		return nil, &EntityError{Op: "create", Kind: kind, Reason: ErrWrongKind}
	}

	now := s.now()
	ids := make([]domain.ID, 0, count)
	for range count {
		id := s.snap.NextID
		s.snap.NextID++
		switch kind {
		case domain.KindNote:
			s.snap.Notes = append(s.snap.Notes, domain.NewNote(id, now))
		case domain.KindTodo:
			s.snap.Todos = append(s.snap.Todos, domain.NewTodo(id, now))
		}
		ids = append(ids, id)
	}

	s.touch()
	s.logger.Debug("created", "kind", kind.String(), "count", count, "first", ids[0])
	return ids, nil
}

// Delete removes every entity whose ID is in ids and returns how many were
// removed. Unknown IDs are ignored.
func (s *Store) Delete(ids []domain.ID) int {
	if len(ids) == 0 {
		return 0
	}
	set := make(map[domain.ID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	before := len(s.snap.Notes) + len(s.snap.Todos)
	s.snap.Notes = slices.DeleteFunc(s.snap.Notes, func(n domain.Note) bool {
		_, ok := set[n.ID]
		return ok
	})
	s.snap.Todos = slices.DeleteFunc(s.snap.Todos, func(t domain.Todo) bool {
		_, ok := set[t.ID]
		return ok
	})
	removed := before - len(s.snap.Notes) - len(s.snap.Todos)

	if removed > 0 {
		s.touch()
		s.logger.Debug("deleted", "requested", len(ids), "removed", removed)
	}
	return removed
}

// Rename sets the title of a note or todo
func (s *Store) Rename(id domain.ID, title string) error {
	if err := ValidateRequired("title", title); err != nil {
		return err
	}
	title = strings.TrimSpace(title)

	if n := s.note(id); n != nil {
		n.Title = title
	} else if t := s.todo(id); t != nil {
		t.Title = title
	} else {
		return &EntityError{ID: id, Op: "rename", Reason: ErrNotFound}
	}

	s.touch()
	return nil
}

// SetBody replaces the body of a note or todo
func (s *Store) SetBody(id domain.ID, body string) error {
	if n := s.note(id); n != nil {
		n.Body = body
	} else if t := s.todo(id); t != nil {
		t.Body = body
	} else {
		return &EntityError{ID: id, Op: "edit body", Reason: ErrNotFound}
	}
	s.touch()
	return nil
}

// Body returns the body text of a note or todo
func (s *Store) Body(id domain.ID) (string, bool) {
	if n := s.note(id); n != nil {
		return n.Body, true
	}
	if t := s.todo(id); t != nil {
		return t.Body, true
	}
	return "", false
}

// AddTag labels a note or todo with tag. Tags stay unique: adding one that
// is already present changes nothing and reports false.
func (s *Store) AddTag(id domain.ID, tag string) (bool, error) {
	tag, err := ValidateTag(tag)
	if err != nil {
		return false, err
	}
	return s.updateTags(id, "tag", func(t domain.Tags) (domain.Tags, bool) { return t.Add(tag) })
}

// RemoveTag drops tag from a note or todo and reports whether it was there
func (s *Store) RemoveTag(id domain.ID, tag string) (bool, error) {
	tag, err := ValidateTag(tag)
	if err != nil {
		return false, err
	}
	return s.updateTags(id, "untag", func(t domain.Tags) (domain.Tags, bool) { return t.Remove(tag) })
}

func (s *Store) updateTags(id domain.ID, op string, apply func(domain.Tags) (domain.Tags, bool)) (bool, error) {
	var tags *domain.Tags
	if n := s.note(id); n != nil {
		tags = &n.Tags
	} else if t := s.todo(id); t != nil {
		tags = &t.Tags
	} else {
		return false, &EntityError{ID: id, Op: op, Reason: ErrNotFound}
	}

	next, changed := apply(*tags)
	if !changed {
		return false, nil
	}
	*tags = next
	s.touch()
	s.logger.Debug("tags updated", "id", id, "op", op, "tags", next.String())
	return true, nil
}

// ToggleComplete flips the completed flag of a todo and returns the new value
func (s *Store) ToggleComplete(id domain.ID) (bool, error) {
	t := s.todo(id)
	if t == nil {
		return false, s.missing(id, "toggle")
	}
	t.Completed = !t.Completed
	s.touch()
	return t.Completed, nil
}

// SetSeverity changes the severity of a todo
func (s *Store) SetSeverity(id domain.ID, sev domain.Severity) error {
	if err := ValidateSeverity(sev); err != nil {
		return err
	}
	t := s.todo(id)
	if t == nil {
		return s.missing(id, "set severity")
	}
	t.Severity = sev
	s.touch()
	return nil
}

// SetDue sets or, with a nil due, clears the due date of a todo
func (s *Store) SetDue(id domain.ID, due *domain.Date) error {
	t := s.todo(id)
	if t == nil {
		return s.missing(id, "set due date")
	}
	if due != nil {
		d := *due
		due = &d
	}
	t.Due = due
	s.touch()
	return nil
}

// Notes returns a copy of the notes in display order
func (s *Store) Notes() []domain.Note {
	return domain.CloneNotes(s.snap.Notes)
}

// Todos returns a copy of the todos in display order
func (s *Store) Todos() []domain.Todo {
	return domain.CloneTodos(s.snap.Todos)
}

// Note looks up a note by ID
func (s *Store) Note(id domain.ID) (domain.Note, bool) {
	if n := s.note(id); n != nil {
		return n.Clone(), true
	}
	return domain.Note{}, false
}

// Todo looks up a todo by ID
func (s *Store) Todo(id domain.ID) (domain.Todo, bool) {
	if t := s.todo(id); t != nil {
		return t.Clone(), true
	}
	return domain.Todo{}, false
}

// KindOf returns the kind of the entity with the given ID, or KindUnknown
func (s *Store) KindOf(id domain.ID) domain.Kind {
	switch {
	case s.note(id) != nil:
		return domain.KindNote
	case s.todo(id) != nil:
		return domain.KindTodo
	default:
		return domain.KindUnknown
	}
}

// IDs returns the IDs of kind in display order
func (s *Store) IDs(kind domain.Kind) []domain.ID {
	switch kind {
	case domain.KindNote:
		ids := make([]domain.ID, len(s.snap.Notes))
		for i, n := range s.snap.Notes {
			ids[i] = n.ID
		}
		return ids
	case domain.KindTodo:
		ids := make([]domain.ID, len(s.snap.Todos))
		for i, t := range s.snap.Todos {
			ids[i] = t.ID
		}
		return ids
	default:
		return nil
	}
}

// Len returns the number of entities of kind
func (s *Store) Len(kind domain.Kind) int {
	switch kind {
	case domain.KindNote:
		return len(s.snap.Notes)
	case domain.KindTodo:
		return len(s.snap.Todos)
	default:
		return 0
	}
}

// Dirty reports whether the collections differ from the last persisted
// snapshot
func (s *Store) Dirty() bool {
	return s.dirty
}

// Revision increases on every mutation and load
func (s *Store) Revision() uint64 {
	return s.revision
}

// Path returns the location of the primary snapshot
func (s *Store) Path() string {
	return s.repo.Path()
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() *domain.Snapshot {
	return s.snap.Clone()
}

func (s *Store) touch() {
	s.revision++
	s.dirty = fingerprint(s.snap) != s.savedSum
}

func (s *Store) note(id domain.ID) *domain.Note {
	for i := range s.snap.Notes {
		if s.snap.Notes[i].ID == id {
			return &s.snap.Notes[i]
		}
	}
	return nil
}

func (s *Store) todo(id domain.ID) *domain.Todo {
	for i := range s.snap.Todos {
		if s.snap.Todos[i].ID == id {
			return &s.snap.Todos[i]
		}
	}
	return nil
}

// missing builds the error for an operation whose target is absent or of
// the other kind
func (s *Store) missing(id domain.ID, op string) error {
	if kind := s.KindOf(id); kind != domain.KindUnknown {
		return &EntityError{ID: id, Op: op, Kind: kind, Reason: ErrWrongKind}
	}
	return &EntityError{ID: id, Op: op, Reason: ErrNotFound}
}

// fingerprint hashes the collections only; NextID does not make the store
// dirty on its own
func fingerprint(snap *domain.Snapshot) [sha256.Size]byte {
	data, err := json.Marshal(struct {
		Notes []domain.Note `json:"notes"`
		Todos []domain.Todo `json:"todos"`
	}{snap.Notes, snap.Todos})
	if err != nil {
		return [sha256.Size]byte{}
	}
	return sha256.Sum256(data)
}
