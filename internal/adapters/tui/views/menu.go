package views

import (
	"termnotes/internal/adapters/tui/styles"
	"termnotes/internal/session"
)

// RenderMenu draws the main menu with cursor highlighted
func RenderMenu(cursor session.MenuItem) string {
	v := NewViewBuilder().Title("Main Menu")
	for _, item := range session.MenuItems {
		if item == cursor {
			v.Line(styles.ItemSelected.Render("> " + item.String()))
		} else {
			v.Line(styles.Item.Render("  " + item.String()))
		}
	}
	return v.BlankLine().
		Help(Keys.Down, Keys.Up, Keys.Enter, Keys.Command, Keys.Quit).
		StringUnwrapped()
}
