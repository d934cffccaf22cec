package views

import (
	"termnotes/internal/adapters/tui/styles"
	"termnotes/internal/domain"
)

// cursorGlyph marks the insertion point
const cursorGlyph = "█"

// RenderEditor draws the edit box for field of the entity titled label
func RenderEditor(label string, field domain.Field, buffer string, width int) string {
	v := NewViewBuilder().Title("Editing " + field.String())
	v.Line(styles.InputLabel.Render(label))

	box := styles.InputFocused
	if width > 8 {
		box = box.Width(width - 6)
	}
	v.Line(box.Render(buffer + cursorGlyph))

	if field == domain.FieldBody {
		return v.Help(Keys.Enter, Keys.Newline, Keys.Back).StringUnwrapped()
	}
	return v.Help(Keys.Enter, Keys.Back).StringUnwrapped()
}
