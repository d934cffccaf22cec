package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termnotes/internal/adapters/editor"
	"termnotes/internal/adapters/tui/views"
	"termnotes/internal/domain"
	"termnotes/internal/session"
)

var errNoEditor = errors.New("external editor not configured")

// App is the main TUI application model. It forwards keys to the session
// machine and renders whatever state results.
type App struct {
	ctx     context.Context
	machine *session.Machine
	editor  *editor.Opener
	now     func() time.Time

	layout views.Layout
}

// NewApp creates a new TUI application. ed may be nil, in which case
// :edit reports an error.
func NewApp(ctx context.Context, machine *session.Machine, ed *editor.Opener) *App {
	return &App{
		ctx:     ctx,
		machine: machine,
		editor:  ed,
		now:     time.Now,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.SetSize(msg.Width, msg.Height)
		return a, nil

	case editorFinishedMsg:
		text, err := a.editor.Collect(msg.path)
		if msg.err != nil {
			err = msg.err
		}
		a.machine.FinishExternalEdit(msg.id, text, err)
		return a, nil

	case tea.KeyMsg:
		for _, k := range translateKey(msg) {
			a.machine.HandleKey(a.ctx, k)
			if a.machine.Quitting() {
				return a, tea.Quit
			}
			if id, ok := a.machine.TakeExternalEdit(); ok {
				return a, a.openEditor(id)
			}
		}
	}

	return a, nil
}

type editorFinishedMsg struct {
	id   domain.ID
	path string
	err  error
}

// openEditor suspends the program while a body is edited in $EDITOR
func (a *App) openEditor(id domain.ID) tea.Cmd {
	if a.editor == nil {
		a.machine.FinishExternalEdit(id, "", errNoEditor)
		return nil
	}
	body, ok := a.machine.Store().Body(id)
	if !ok {
		return nil
	}

	path, cmd, err := a.editor.Prepare(body)
	if err != nil {
		a.machine.FinishExternalEdit(id, "", err)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{id: id, path: path, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.machine.Quitting() {
		return ""
	}
	return views.Screen(a.machine, a.layout, domain.DateOf(a.now()))
}
