package views

// Layout holds the terminal size shared by all renderers
type Layout struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (l *Layout) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// chromeRows is the space taken by the title, status bar and command line
const chromeRows = 7

// BodyRows returns how many list rows fit on screen
func (l Layout) BodyRows() int {
	if l.Height <= 0 {
		return 20
	}
	return max(l.Height-chromeRows, 3)
}
