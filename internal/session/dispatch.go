package session

import (
	"context"
	"fmt"

	"termnotes/internal/application/commands"
	"termnotes/internal/domain"
)

// HandleKey applies one keystroke to the session. It never fails: problems
// are reported through the status line.
func (m *Machine) HandleKey(ctx context.Context, k Key) {
	defer m.clamp()

	if k.Code == KeyCtrlQ {
		m.status = m.interp.Run(ctx, m, "q")
		return
	}

	switch m.mode {
	case ModeMainMenu:
		m.handleMainMenu(k)
	case ModeNotesList, ModeTodosList:
		m.handleList(k)
	case ModeCommand:
		m.handleCommand(ctx, k)
	case ModeEditing:
		m.handleEditing(k)
	case ModeHelp:
		m.setMode(m.helpReturn)
	}
}

func (m *Machine) handleMainMenu(k Key) {
	switch {
	case k.Code == KeyDown || k.is('j'):
		m.menuCursor = min(m.menuCursor+1, len(MenuItems)-1)
	case k.Code == KeyUp || k.is('k'):
		m.menuCursor = max(m.menuCursor-1, 0)
	case k.Code == KeyEnter:
		m.openMenuItem(MenuItems[m.menuCursor])
	case k.is(':'):
		m.enterCommand()
	case k.is('?'):
		m.ShowHelp()
	}
}

func (m *Machine) openMenuItem(item MenuItem) {
	switch item {
	case MenuNotes:
		m.section = domain.SectionNotes
		m.setMode(ModeNotesList)
		m.info("Notes section")
	case MenuTodos:
		m.section = domain.SectionTodos
		m.setMode(ModeTodosList)
		m.info("Todo section")
	case MenuHelp:
		m.ShowHelp()
		m.info("Help section")
	}
}

func (m *Machine) handleList(k Key) {
	switch {
	case k.Code == KeyDown || k.is('j'):
		m.move(1)
	case k.Code == KeyUp || k.is('k'):
		m.move(-1)
	case k.Code == KeyEnter:
		m.editSelected()
	case k.Code == KeyEsc:
		m.ShowMainMenu()
		m.info("Main Menu")
	case k.is(':'):
		m.enterCommand()
	case k.is(' '):
		if m.mode == ModeTodosList {
			m.toggleSelected()
		}
	case k.is('x'):
		m.toggleMark()
	case k.is('?'):
		m.ShowHelp()
	}
}

// move shifts the selection by delta, stopping at either end
func (m *Machine) move(delta int) {
	idx := m.Selection(m.section)
	if idx == noSelection {
		return
	}
	n := m.store.Len(m.section.Kind())
	m.selection[m.section] = max(0, min(idx+delta, n-1))
}

// editSelected opens the selection in Editing: a note's body, a todo's title
func (m *Machine) editSelected() {
	id, ok := m.SelectedID()
	if !ok {
		return
	}
	switch m.store.KindOf(id) {
	case domain.KindNote:
		n, _ := m.store.Note(id)
		m.BeginEdit(id, domain.FieldBody, n.Body)
		m.info(fmt.Sprintf("Editing %s (Enter to save, Esc to cancel)", n.Title))
	case domain.KindTodo:
		t, _ := m.store.Todo(id)
		m.BeginEdit(id, domain.FieldTitle, t.Title)
		m.info("Editing todo title (Enter to save, Esc to cancel)")
	}
}

func (m *Machine) toggleSelected() {
	id, ok := m.SelectedID()
	if !ok {
		return
	}
	m.DisarmQuit()
	done, err := m.store.ToggleComplete(id)
	if err != nil {
		m.fail(err)
		return
	}
	if done {
		m.info("Todo completed")
	} else {
		m.info("Todo reopened")
	}
}

func (m *Machine) toggleMark() {
	id, ok := m.SelectedID()
	if !ok {
		return
	}
	if m.IsMarked(id) {
		delete(m.marks, id)
	} else {
		m.marks[id] = struct{}{}
	}
	m.info(fmt.Sprintf("%d marked (:delm deletes them)", len(m.marks)))
}

func (m *Machine) enterCommand() {
	m.commandReturn = m.mode
	m.buffer = nil
	m.setMode(ModeCommand)
}

func (m *Machine) handleCommand(ctx context.Context, k Key) {
	switch k.Code {
	case KeyEsc:
		m.buffer = nil
		m.setMode(m.commandReturn)
	case KeyEnter:
		input := string(m.buffer)
		m.buffer = nil
		// Commands that switch modes override this
		m.setMode(m.commandReturn)
		if input == "" {
			return
		}
		m.status = m.interp.Run(ctx, m, input)
	case KeyBackspace:
		m.backspace()
	case KeyRune:
		m.buffer = append(m.buffer, k.Rune)
	}
}

func (m *Machine) handleEditing(k Key) {
	switch k.Code {
	case KeyEsc:
		m.buffer = nil
		m.setMode(m.editReturn)
		m.info("Edit cancelled")
	case KeyEnter:
		m.commitEdit()
	case KeyNewline:
		if m.editField == domain.FieldBody {
			m.buffer = append(m.buffer, '\n')
		}
	case KeyBackspace:
		m.backspace()
	case KeyRune:
		m.buffer = append(m.buffer, k.Rune)
	}
}

// commitEdit writes the buffer to the store. On failure the buffer is kept
// so the text can be corrected.
func (m *Machine) commitEdit() {
	text := string(m.buffer)
	var err error
	if m.editField == domain.FieldBody {
		err = m.store.SetBody(m.editID, text)
	} else {
		err = m.store.Rename(m.editID, text)
	}
	if err != nil {
		m.fail(err)
		return
	}

	m.DisarmQuit()
	m.buffer = nil
	m.setMode(m.editReturn)
	if m.editField == domain.FieldBody {
		m.info(m.bodySaved(m.editID))
	} else {
		m.info("Renamed")
	}
}

func (m *Machine) bodySaved(id domain.ID) string {
	if m.store.KindOf(id) == domain.KindTodo {
		return "Todo saved"
	}
	return "Note saved"
}

func (m *Machine) backspace() {
	if len(m.buffer) > 0 {
		m.buffer = m.buffer[:len(m.buffer)-1]
	}
}

func (m *Machine) info(text string) {
	m.status = commands.Status{Text: text, Level: commands.LevelInfo}
}

func (m *Machine) fail(err error) {
	m.logger.Info("key action failed", "mode", m.mode.String(), "error", err)
	m.status = commands.Status{Text: "Error: " + err.Error(), Level: commands.LevelError}
}

func (k Key) is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}
