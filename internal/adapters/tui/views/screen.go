package views

import (
	"strings"

	"termnotes/internal/adapters/tui/styles"
	"termnotes/internal/domain"
	"termnotes/internal/session"
)

// Screen renders the whole session: status bar, body, and command line
func Screen(m *session.Machine, layout Layout, today domain.Date) string {
	var b strings.Builder
	b.WriteString(statusBar(m))
	b.WriteString("\n\n")
	b.WriteString(body(m, layout, today))
	b.WriteString("\n")
	b.WriteString(commandLine(m))
	return styles.App.Render(b.String())
}

func statusBar(m *session.Machine) string {
	var b strings.Builder
	b.WriteString(styles.StatusMode.Render(m.Mode().String()))
	if m.Store().Dirty() {
		b.WriteString(styles.StatusDirty.Render("[+] "))
	}
	b.WriteString(RenderStatus(m.Status()))
	return b.String()
}

func body(m *session.Machine, layout Layout, today domain.Date) string {
	switch m.Mode() {
	case session.ModeMainMenu:
		return RenderMenu(m.MenuCursor())
	case session.ModeHelp:
		return RenderHelp()
	case session.ModeEditing:
		id, field := m.EditTarget()
		return RenderEditor(editLabel(m.Store(), id), field, m.Buffer(), layout.Width)
	}

	// List modes, and Command over whichever screen it was opened from
	st := ListState{
		Selected: m.Selection(m.Section()),
		Rows:     layout.BodyRows(),
		IsMarked: m.IsMarked,
	}
	switch m.Section() {
	case domain.SectionNotes:
		return RenderNotes(m.Store().Notes(), st)
	case domain.SectionTodos:
		return RenderTodos(m.Store().Todos(), st, today)
	default:
		return RenderMenu(m.MenuCursor())
	}
}

type entityLookup interface {
	Note(domain.ID) (domain.Note, bool)
	Todo(domain.ID) (domain.Todo, bool)
}

func editLabel(store entityLookup, id domain.ID) string {
	if n, ok := store.Note(id); ok {
		return "Note: " + n.Title
	}
	if t, ok := store.Todo(id); ok {
		return "Todo: " + t.Title
	}
	return ""
}

func commandLine(m *session.Machine) string {
	if m.Mode() != session.ModeCommand {
		return styles.StatusText.Render("Press : for commands, ? for help")
	}
	return styles.CommandLine.Render(":" + m.Buffer() + cursorGlyph)
}
