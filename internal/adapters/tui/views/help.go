package views

import (
	"strings"

	"termnotes/internal/adapters/tui/styles"
)

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	name    string
	entries []helpEntry
}{
	{"Navigation", []helpEntry{
		{"j / k / ↑ / ↓", "Move down/up in list"},
		{"Enter", "Select item / edit (note body, todo title)"},
		{"Esc", "Go back / cancel"},
		{"x", "Mark item for :delm"},
		{"Space", "Toggle todo completion"},
		{"?", "Show this help"},
		{"Ctrl+Q", "Quit (same as :q)"},
	}},
	{"Commands (press : first)", []helpEntry{
		{"[n]nn", "Create [n] new notes"},
		{"[n]ntodo", "Create [n] new todos"},
		{"[n]del", "Delete selection and the next n-1 items"},
		{"delm", "Delete marked items"},
		{"rnm", "Rename selected note/todo"},
		{"body / b", "Edit body of selected note/todo"},
		{"edit / e", "Edit body in $EDITOR"},
		{"tag / untag <name>", "Add or remove a tag"},
		{"sev <level>", "Set todo severity (info..critical)"},
		{"due <date|none>", "Set or clear todo due date (YYYY-MM-DD)"},
		{"yank / y", "Copy selection to clipboard"},
		{"mm", "Go to main menu"},
		{"save / w", "Save all data"},
		{"wq / x", "Save and quit"},
		{"backup / backups", "Create a backup / list backups"},
		{"export-md / export-csv", "Export to Markdown / CSV"},
		{"q / quit", "Quit (twice to discard changes)"},
		{"q!", "Force quit without saving"},
	}},
}

// RenderHelp draws the help overlay
func RenderHelp() string {
	v := NewViewBuilder().Title("Terminal Notes Help")
	for _, section := range helpSections {
		v.Line(styles.InputLabel.Render(section.name))
		for _, e := range section.entries {
			v.Raw(helpLine(e.key, e.desc))
		}
		v.BlankLine()
	}
	return v.Muted("Press any key to close").StringUnwrapped()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 24)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
