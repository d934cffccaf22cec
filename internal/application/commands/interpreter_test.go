package commands

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termnotes/internal/adapters/filesystem"
	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// fakeSession records what commands ask of the session
type fakeSession struct {
	store    *application.Store
	section  domain.Section
	cursor   int
	marked   []domain.ID
	editID   domain.ID
	editText string
	editing  bool
	menu     bool
	help     bool
	quit     bool
	armed    bool
	armedRev uint64
	external domain.ID
}

func (f *fakeSession) Section() domain.Section { return f.section }

func (f *fakeSession) SelectedID() (domain.ID, bool) {
	ids := f.SelectedIDs(1)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func (f *fakeSession) SelectedIDs(n int) []domain.ID {
	ids := f.store.IDs(f.section.Kind())
	if f.cursor < 0 || f.cursor >= len(ids) {
		return nil
	}
	end := min(f.cursor+n, len(ids))
	return ids[f.cursor:end]
}

func (f *fakeSession) MarkedIDs() []domain.ID { return f.marked }
func (f *fakeSession) ClearMarks() { f.marked = nil }

func (f *fakeSession) Focus(section domain.Section, id domain.ID) {
	f.section = section
	for i, other := range f.store.IDs(section.Kind()) {
		if other == id {
			f.cursor = i
		}
	}
}

func (f *fakeSession) BeginEdit(id domain.ID, field domain.Field, initial string) {
	f.editing, f.editID, f.editText = true, id, initial
}

func (f *fakeSession) ShowMainMenu() {
	f.menu = true
	f.section = domain.SectionNone
}

func (f *fakeSession) ShowHelp() { f.help = true }
func (f *fakeSession) RequestExternalEdit(id domain.ID) { f.external = id }
func (f *fakeSession) PendingQuit() (uint64, bool) { return f.armedRev, f.armed }
func (f *fakeSession) ArmQuit(rev uint64) { f.armed, f.armedRev = true, rev }
func (f *fakeSession) DisarmQuit() { f.armed = false }
func (f *fakeSession) RequestQuit() { f.quit = true }

type fakeClipboard struct {
	text        string
	unavailable bool
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func (c *fakeClipboard) IsAvailable() bool { return !c.unavailable }

func newTestInterpreter(t *testing.T) (*Interpreter, *fakeSession, *application.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := application.NewStore(filesystem.NewRepository(dir), filesystem.NewExporter(dir))
	interp := NewInterpreter(store, &fakeClipboard{}, nil)
	return interp, &fakeSession{store: store, cursor: -1}, store, dir
}

func TestRun_CreateNotesThenSave(t *testing.T) {
	interp, sess, store, dir := newTestInterpreter(t)
	ctx := context.Background()

	st := interp.Run(ctx, sess, "3nn")
	assert.False(t, st.IsError(), st.Text)
	assert.Equal(t, 3, store.Len(domain.KindNote))
	assert.True(t, store.Dirty())
	assert.Equal(t, domain.SectionNotes, sess.section)
	assert.Equal(t, 0, sess.cursor, "focus moves to the first new note")

	st = interp.Run(ctx, sess, "save")
	assert.Equal(t, "Data saved successfully", st.Text)
	assert.False(t, store.Dirty())

	snap, err := filesystem.NewRepository(dir).Load()
	require.NoError(t, err)
	require.Len(t, snap.Notes, 3)
	for i, n := range snap.Notes {
		assert.Equal(t, domain.NewNote(domain.ID(i+1), n.CreatedAt).Title, n.Title)
	}
}

func TestRun_CreateThenDeleteBlock(t *testing.T) {
	for _, n := range []string{"1", "2", "5"} {
		t.Run(n, func(t *testing.T) {
			interp, sess, store, _ := newTestInterpreter(t)
			ctx := context.Background()
			interp.Run(ctx, sess, "2nn")
			before := store.IDs(domain.KindNote)

			interp.Run(ctx, sess, n+"nn")
			created := store.IDs(domain.KindNote)[len(before):]
			st := interp.Run(ctx, sess, n+"del")

			assert.False(t, st.IsError(), st.Text)
			assert.Equal(t, before, store.IDs(domain.KindNote))

			interp.Run(ctx, sess, "nn")
			latest := store.IDs(domain.KindNote)
			assert.NotContains(t, created, latest[len(latest)-1])
		})
	}
}

func TestRun_DeleteCountsFromSelection(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "5ntodo") // ids 1..5
	sess.cursor = 3

	st := interp.Run(ctx, sess, "9del")

	assert.Equal(t, "Deleted 2 todos", st.Text)
	assert.Equal(t, []domain.ID{1, 2, 3}, store.IDs(domain.KindTodo))
}

func TestRun_DeleteWithoutSelection(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)

	st := interp.Run(context.Background(), sess, "del")

	assert.True(t, st.IsError())
	assert.Contains(t, st.Text, "nothing selected")
}

func TestRun_DeleteMarked(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "3nn")
	interp.Run(ctx, sess, "ntodo")
	sess.marked = []domain.ID{1, 4}

	st := interp.Run(ctx, sess, "delm")

	assert.Equal(t, "Deleted 2 items", st.Text)
	assert.Equal(t, []domain.ID{2, 3}, store.IDs(domain.KindNote))
	assert.Empty(t, store.IDs(domain.KindTodo))
	assert.Empty(t, sess.marked)

	st = interp.Run(ctx, sess, "delm")
	assert.True(t, st.IsError())
}

func TestRun_UnknownCommandLeavesStateUnchanged(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")
	require.NoError(t, store.Save())
	rev := store.Revision()

	st := interp.Run(ctx, sess, "5xyz")

	assert.True(t, st.IsError())
	assert.Contains(t, st.Text, "unknown command")
	assert.Contains(t, st.Text, "5xyz")
	assert.Equal(t, rev, store.Revision())
	assert.False(t, store.Dirty())
	assert.Equal(t, 1, store.Len(domain.KindNote))
}

func TestRun_RenameBeginsEditing(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "ntodo")
	rev := store.Revision()

	st := interp.Run(ctx, sess, "rnm")

	assert.False(t, st.IsError())
	assert.True(t, sess.editing)
	assert.Equal(t, domain.ID(1), sess.editID)
	assert.Equal(t, "Todo 1", sess.editText)
	assert.Equal(t, rev, store.Revision(), "rnm does not mutate the store")
}

func TestRun_QuitConfirmation(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")

	st := interp.Run(ctx, sess, "q")
	assert.Equal(t, LevelWarning, st.Level)
	assert.False(t, sess.quit)

	interp.Run(ctx, sess, "quit")
	assert.True(t, sess.quit)
}

func TestRun_QuitConfirmationResetByOtherCommand(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")

	interp.Run(ctx, sess, "q")
	interp.Run(ctx, sess, "mm")
	interp.Run(ctx, sess, "q")
	assert.False(t, sess.quit, "an intervening command disarms confirmation")

	interp.Run(ctx, sess, "q")
	assert.True(t, sess.quit)
}

func TestRun_QuitConfirmationResetByMutation(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "ntodo")

	interp.Run(ctx, sess, "q")
	_, err := store.ToggleComplete(1) // e.g. Spacebar between the two commands
	require.NoError(t, err)
	interp.Run(ctx, sess, "q")

	assert.False(t, sess.quit)
}

func TestRun_QuitWhenClean(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)

	interp.Run(context.Background(), sess, "q")

	assert.True(t, sess.quit)
}

func TestRun_ForceQuitNeverWrites(t *testing.T) {
	interp, sess, store, dir := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "4nn")

	interp.Run(ctx, sess, "q!")

	assert.True(t, sess.quit)
	assert.True(t, store.Dirty())
	_, err := os.Stat(dir + "/" + filesystem.DataFileName)
	assert.True(t, errors.Is(err, os.ErrNotExist), "primary file must not be written")
}

func TestRun_SaveAndQuit(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")

	interp.Run(ctx, sess, "wq")

	assert.True(t, sess.quit)
	assert.False(t, store.Dirty())
}

func TestRun_SeverityAndDue(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "ntodo")

	st := interp.Run(ctx, sess, "sev critical")
	assert.Equal(t, "Severity set to critical", st.Text)

	st = interp.Run(ctx, sess, "due 2026-11-05")
	assert.Equal(t, "Due 2026-11-05", st.Text)

	todo, _ := store.Todo(1)
	assert.Equal(t, domain.SeverityCritical, todo.Severity)
	require.NotNil(t, todo.Due)
	assert.Equal(t, "2026-11-05", todo.Due.String())

	interp.Run(ctx, sess, "nn")
	st = interp.Run(ctx, sess, "sev low")
	assert.True(t, st.IsError(), "severity applies to todos only")
	assert.Contains(t, st.Text, "not a valid target")
}

func TestRun_BackupAndExport(t *testing.T) {
	interp, sess, store, dir := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "2nn")

	st := interp.Run(ctx, sess, "backup")
	assert.False(t, st.IsError(), st.Text)
	assert.Contains(t, st.Text, "backup_")
	assert.True(t, store.Dirty())

	st = interp.Run(ctx, sess, "export-csv")
	assert.False(t, st.IsError(), st.Text)
	assert.Contains(t, st.Text, dir)

	st = interp.Run(ctx, sess, "backups")
	assert.True(t, st.IsError(), "no catalog configured")
}

func TestRun_Yank(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")
	require.NoError(t, store.SetBody(1, "secret recipe"))

	st := interp.Run(ctx, sess, "yank")

	assert.Equal(t, "Copied note body to clipboard", st.Text)
	assert.Equal(t, "secret recipe", interp.clipboard.(*fakeClipboard).text)
}

func TestRun_YankWithoutClipboard(t *testing.T) {
	_, sess, store, _ := newTestInterpreter(t)
	interp := NewInterpreter(store, &fakeClipboard{unavailable: true}, nil)
	ctx := context.Background()
	interp.Run(ctx, sess, "nn")

	st := interp.Run(ctx, sess, "yank")

	assert.True(t, st.IsError())
	assert.Contains(t, st.Text, "clipboard unavailable")
}

func TestRun_MainMenuAndHelp(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)
	ctx := context.Background()

	interp.Run(ctx, sess, "?")
	assert.True(t, sess.help)

	interp.Run(ctx, sess, "mm")
	assert.True(t, sess.menu)
}

type panickingSession struct{ fakeSession }

func (p *panickingSession) ShowHelp() { panic("boom") }

func TestRun_PanicBecomesStatus(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)
	p := &panickingSession{fakeSession: *sess}

	st := interp.Run(context.Background(), p, "?")

	assert.True(t, st.IsError())
	assert.Contains(t, st.Text, "boom")
}

func TestRun_ExternalEdit(t *testing.T) {
	interp, sess, _, _ := newTestInterpreter(t)
	ctx := context.Background()

	st := interp.Run(ctx, sess, "edit")
	assert.True(t, st.IsError(), "nothing selected")

	interp.Run(ctx, sess, "ntodo")
	st = interp.Run(ctx, sess, "e")
	assert.False(t, st.IsError(), st.Text)
	assert.Equal(t, domain.ID(1), sess.external, "todo bodies open in the editor too")

	interp.Run(ctx, sess, "nn")
	st = interp.Run(ctx, sess, "edit")
	assert.False(t, st.IsError(), st.Text)
	assert.Equal(t, domain.ID(2), sess.external)
}

func TestRun_BodyBeginsEditing(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()

	st := interp.Run(ctx, sess, "body")
	assert.True(t, st.IsError(), "nothing selected")

	interp.Run(ctx, sess, "ntodo")
	require.NoError(t, store.SetBody(1, "call before noon"))

	st = interp.Run(ctx, sess, "b")
	assert.False(t, st.IsError(), st.Text)
	assert.True(t, sess.editing)
	assert.Equal(t, domain.ID(1), sess.editID)
	assert.Equal(t, "call before noon", sess.editText)
}

func TestRun_TagAndUntag(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()

	st := interp.Run(ctx, sess, "tag work")
	assert.True(t, st.IsError(), "nothing selected")

	interp.Run(ctx, sess, "ntodo")
	st = interp.Run(ctx, sess, "tag work")
	assert.Equal(t, `Tagged "work"`, st.Text)
	interp.Run(ctx, sess, "tag home")

	st = interp.Run(ctx, sess, "tag work")
	assert.Equal(t, LevelWarning, st.Level)
	assert.Equal(t, `Already tagged "work"`, st.Text)

	todo, _ := store.Todo(1)
	assert.Equal(t, domain.Tags{"work", "home"}, todo.Tags)

	st = interp.Run(ctx, sess, "untag work")
	assert.Equal(t, `Removed tag "work"`, st.Text)
	st = interp.Run(ctx, sess, "untag work")
	assert.Equal(t, LevelWarning, st.Level)

	todo, _ = store.Todo(1)
	assert.Equal(t, domain.Tags{"home"}, todo.Tags)

	interp.Run(ctx, sess, "nn")
	st = interp.Run(ctx, sess, "tag ideas")
	assert.False(t, st.IsError(), "notes take tags too")
	note, _ := store.Note(2)
	assert.Equal(t, domain.Tags{"ideas"}, note.Tags)

	st = interp.Run(ctx, sess, "tag a,b")
	assert.True(t, st.IsError())
}

func TestRun_YankTodoBody(t *testing.T) {
	interp, sess, store, _ := newTestInterpreter(t)
	ctx := context.Background()
	interp.Run(ctx, sess, "ntodo")

	st := interp.Run(ctx, sess, "y")
	assert.Equal(t, "Copied todo title to clipboard", st.Text)

	require.NoError(t, store.SetBody(1, "agenda"))
	st = interp.Run(ctx, sess, "y")
	assert.Equal(t, "Copied todo body to clipboard", st.Text)
	assert.Equal(t, "agenda", interp.clipboard.(*fakeClipboard).text)
}
