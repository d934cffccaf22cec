// Package session implements the modal interaction state of a terminal
// notes session and the dispatcher that routes keys through it.
package session

import (
	"io"
	"log/slog"

	"termnotes/internal/application"
	"termnotes/internal/application/commands"
	"termnotes/internal/domain"
)

// WelcomeStatus is shown until the first command runs
const WelcomeStatus = "Terminal Notes - Press : for commands, Ctrl+Q to quit"

// noSelection marks an empty collection
const noSelection = -1

// Machine owns the session state. It implements commands.Session so the
// interpreter can drive mode changes, and it is not safe for concurrent use.
type Machine struct {
	store  *application.Store
	interp *commands.Interpreter
	logger *slog.Logger

	mode       Mode
	section    domain.Section
	selection  map[domain.Section]int
	menuCursor int
	buffer     []rune

	commandReturn Mode
	helpReturn    Mode
	editReturn    Mode
	editID        domain.ID
	editField     domain.Field

	marks map[domain.ID]struct{}

	// externalEdit is the entity whose body waits to be opened in $EDITOR
	externalEdit domain.ID

	quitArmed bool
	quitRev   uint64
	quit      bool

	status commands.Status
}

// Option configures a Machine
type Option func(*Machine)

// WithLogger sets the logger used for mode transitions
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMachine starts a session on the main menu
func NewMachine(store *application.Store, interp *commands.Interpreter, opts ...Option) *Machine {
	m := &Machine{
		store:  store,
		interp: interp,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		mode:   ModeMainMenu,
		selection: map[domain.Section]int{
			domain.SectionNotes: noSelection,
			domain.SectionTodos: noSelection,
		},
		marks:  make(map[domain.ID]struct{}),
		status: commands.Status{Text: WelcomeStatus},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.clamp()
	return m
}

// Mode returns the current mode
func (m *Machine) Mode() Mode { return m.mode }

// Section returns the collection in focus, or SectionNone on the menu
func (m *Machine) Section() domain.Section { return m.section }

// Selection returns the selected index within section, or -1 when the
// collection is empty
func (m *Machine) Selection(section domain.Section) int {
	if idx, ok := m.selection[section]; ok {
		return idx
	}
	return noSelection
}

// MenuCursor returns the highlighted main menu entry
func (m *Machine) MenuCursor() MenuItem { return MenuItems[m.menuCursor] }

// Buffer returns the command or edit text being typed
func (m *Machine) Buffer() string { return string(m.buffer) }

// EditTarget returns the entity and field being edited
func (m *Machine) EditTarget() (domain.ID, domain.Field) { return m.editID, m.editField }

// IsMarked reports whether id is marked for delm
func (m *Machine) IsMarked(id domain.ID) bool {
	_, ok := m.marks[id]
	return ok
}

// Status returns the current status line
func (m *Machine) Status() commands.Status { return m.status }

// SetStatus replaces the status line, e.g. to report a startup problem
func (m *Machine) SetStatus(st commands.Status) { m.status = st }

// Quitting reports whether the session asked to exit
func (m *Machine) Quitting() bool { return m.quit }

// Store returns the data store the session edits
func (m *Machine) Store() *application.Store { return m.store }

// SelectedID returns the entity under the cursor
func (m *Machine) SelectedID() (domain.ID, bool) {
	ids := m.SelectedIDs(1)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// SelectedIDs returns the selection and up to n-1 entities after it
func (m *Machine) SelectedIDs(n int) []domain.ID {
	if n <= 0 {
		return nil
	}
	ids := m.store.IDs(m.section.Kind())
	idx := m.Selection(m.section)
	if idx < 0 || idx >= len(ids) {
		return nil
	}
	end := min(idx+n, len(ids))
	return ids[idx:end]
}

// MarkedIDs returns marked entities, notes first, each in display order
func (m *Machine) MarkedIDs() []domain.ID {
	var out []domain.ID
	for _, kind := range []domain.Kind{domain.KindNote, domain.KindTodo} {
		for _, id := range m.store.IDs(kind) {
			if m.IsMarked(id) {
				out = append(out, id)
			}
		}
	}
	return out
}

// ClearMarks unmarks everything
func (m *Machine) ClearMarks() {
	clear(m.marks)
}

// Focus opens the list of section with id selected
func (m *Machine) Focus(section domain.Section, id domain.ID) {
	m.section = section
	switch section {
	case domain.SectionNotes:
		m.setMode(ModeNotesList)
	case domain.SectionTodos:
		m.setMode(ModeTodosList)
	default:
		m.setMode(ModeMainMenu)
		return
	}
	for i, other := range m.store.IDs(section.Kind()) {
		if other == id {
			m.selection[section] = i
			return
		}
	}
}

// BeginEdit enters Editing with the buffer set to initial
func (m *Machine) BeginEdit(id domain.ID, field domain.Field, initial string) {
	m.editReturn = m.mode
	if !m.editReturn.IsList() {
		m.editReturn = listModeFor(domain.SectionFor(m.store.KindOf(id)))
	}
	m.editID = id
	m.editField = field
	m.buffer = []rune(initial)
	m.setMode(ModeEditing)
}

// ShowMainMenu returns to the menu and discards any typed text
func (m *Machine) ShowMainMenu() {
	m.buffer = nil
	m.editID = 0
	m.section = domain.SectionNone
	m.setMode(ModeMainMenu)
}

// ShowHelp opens the help overlay over the current mode
func (m *Machine) ShowHelp() {
	if m.mode != ModeHelp {
		m.helpReturn = m.mode
	}
	m.setMode(ModeHelp)
}

// RequestExternalEdit queues id for the terminal adapter to open in the
// user's editor
func (m *Machine) RequestExternalEdit(id domain.ID) {
	m.externalEdit = id
}

// TakeExternalEdit returns and clears the queued external edit
func (m *Machine) TakeExternalEdit() (domain.ID, bool) {
	id := m.externalEdit
	m.externalEdit = 0
	return id, id != 0
}

// FinishExternalEdit stores the body returned by the editor. err reports a
// failure to launch the editor or read its result.
func (m *Machine) FinishExternalEdit(id domain.ID, body string, err error) {
	defer m.clamp()
	if err == nil {
		err = m.store.SetBody(id, body)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.DisarmQuit()
	m.info(m.bodySaved(id) + " from editor")
}

// PendingQuit returns the store revision at which quit was armed
func (m *Machine) PendingQuit() (uint64, bool) { return m.quitRev, m.quitArmed }

// ArmQuit records that quit was refused once at revision
func (m *Machine) ArmQuit(revision uint64) {
	m.quitArmed = true
	m.quitRev = revision
}

// DisarmQuit forgets a refused quit
func (m *Machine) DisarmQuit() {
	m.quitArmed = false
}

// RequestQuit ends the session after the current key
func (m *Machine) RequestQuit() {
	m.quit = true
}

func (m *Machine) setMode(mode Mode) {
	if mode != m.mode {
		m.logger.Debug("mode change", "from", m.mode.String(), "to", mode.String())
	}
	m.mode = mode
}

// clamp keeps every selection inside its collection and drops marks on
// entities that no longer exist
func (m *Machine) clamp() {
	for section, idx := range m.selection {
		n := m.store.Len(section.Kind())
		switch {
		case n == 0:
			m.selection[section] = noSelection
		case idx < 0:
			m.selection[section] = 0
		case idx >= n:
			m.selection[section] = n - 1
		}
	}
	for id := range m.marks {
		if m.store.KindOf(id) == domain.KindUnknown {
			delete(m.marks, id)
		}
	}
}

func listModeFor(section domain.Section) Mode {
	if section == domain.SectionTodos {
		return ModeTodosList
	}
	return ModeNotesList
}
