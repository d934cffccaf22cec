package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termnotes/internal/adapters/tui/styles"
	"termnotes/internal/domain"
)

// previewWidth bounds the body preview shown next to a title
const previewWidth = 40

// ListState is what a list renderer needs besides the entities
type ListState struct {
	Selected int
	Rows     int
	IsMarked func(domain.ID) bool
}

func (s ListState) marked(id domain.ID) bool {
	return s.IsMarked != nil && s.IsMarked(id)
}

// RenderNotes draws the notes list
func RenderNotes(notes []domain.Note, st ListState) string {
	v := NewViewBuilder().Title(fmt.Sprintf("Notes (%d)", len(notes)))
	if len(notes) == 0 {
		v.Muted("No notes. Use :nn to create one.")
	}

	start, end := Window(st.Selected, len(notes), st.Rows)
	for i := start; i < end; i++ {
		n := notes[i]
		line := n.Title + tagList(n.Tags)
		if p := preview(n.Body); p != "" {
			line += "  " + styles.Preview.Render(p)
		}
		v.Line(row(i == st.Selected, st.marked(n.ID), line))
	}

	return v.BlankLine().
		Help(Keys.Down, Keys.Up, Keys.Enter, Keys.Mark, Keys.Command, Keys.Back).
		StringUnwrapped()
}

// RenderTodos draws the todo list; today decides what is overdue
func RenderTodos(todos []domain.Todo, st ListState, today domain.Date) string {
	v := NewViewBuilder().Title(fmt.Sprintf("Todos (%d)", len(todos)))
	if len(todos) == 0 {
		v.Muted("No todos. Use :ntodo to create one.")
	}

	start, end := Window(st.Selected, len(todos), st.Rows)
	for i := start; i < end; i++ {
		v.Line(row(i == st.Selected, st.marked(todos[i].ID), todoLine(todos[i], today)))
	}

	return v.BlankLine().
		Help(Keys.Down, Keys.Up, Keys.Toggle, Keys.Enter, Keys.Mark, Keys.Command, Keys.Back).
		StringUnwrapped()
}

func todoLine(t domain.Todo, today domain.Date) string {
	var b strings.Builder
	if t.Completed {
		b.WriteString("[x] ")
		b.WriteString(styles.ItemDone.Render(t.Title))
	} else {
		b.WriteString("[ ] ")
		b.WriteString(t.Title)
	}
	b.WriteString(tagList(t.Tags))

	sev := lipgloss.NewStyle().Foreground(styles.SeverityColor(t.Severity))
	b.WriteString("  ")
	b.WriteString(sev.Render(t.Severity.String()))

	if t.Due != nil {
		b.WriteString("  due " + t.Due.String())
		if t.IsOverdue(today) {
			b.WriteString(" " + styles.Overdue.Render("OVERDUE"))
		}
	}
	if p := preview(t.Body); p != "" {
		b.WriteString("  " + styles.Preview.Render(p))
	}
	return b.String()
}

// tagList renders tags as " [a, b]", or nothing without tags
func tagList(tags domain.Tags) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + tags.String() + "]"
}

func row(selected, marked bool, text string) string {
	prefix := "  "
	if marked {
		prefix = styles.Mark.Render("* ")
	}
	if selected {
		return prefix + styles.ItemSelected.Render(text)
	}
	return prefix + styles.Item.Render(text)
}

// preview returns the first line of body, shortened
func preview(body string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	r := []rune(line)
	if len(r) > previewWidth {
		return string(r[:previewWidth-1]) + "…"
	}
	return line
}
