package session

// Mode is the exclusive interaction state that decides what a key does
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeNotesList
	ModeTodosList
	ModeEditing
	ModeCommand
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MENU"
	case ModeNotesList, ModeTodosList:
		return "NORMAL"
	case ModeEditing:
		return "EDITING"
	case ModeCommand:
		return "COMMAND"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// IsList reports whether m browses one of the collections
func (m Mode) IsList() bool {
	return m == ModeNotesList || m == ModeTodosList
}

// KeyCode identifies a key independent of the terminal library
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	KeyCtrlQ
	// KeyNewline inserts a line break while editing a body
	KeyNewline
)

// Key is one keystroke delivered to the machine. Rune is set only for
// KeyRune; the space bar is KeyRune ' '.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// MenuItem is an entry of the main menu
type MenuItem int

const (
	MenuNotes MenuItem = iota
	MenuTodos
	MenuHelp
)

// MenuItems lists the main menu in display order
var MenuItems = []MenuItem{MenuNotes, MenuTodos, MenuHelp}

func (i MenuItem) String() string {
	switch i {
	case MenuNotes:
		return "Notes"
	case MenuTodos:
		return "Todos"
	case MenuHelp:
		return "Help"
	default:
		return ""
	}
}
