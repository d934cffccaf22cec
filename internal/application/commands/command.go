package commands

import (
	"context"

	"termnotes/internal/application"
	"termnotes/internal/domain"
	"termnotes/internal/ports"
)

// Session is the part of the interactive session a command may inspect or
// drive. It is implemented by session.Machine.
type Session interface {
	// Section returns the collection in focus, or SectionNone on the menu
	Section() domain.Section
	// SelectedID returns the entity under the cursor
	SelectedID() (domain.ID, bool)
	// SelectedIDs returns the selection and up to n-1 following entities
	// in display order
	SelectedIDs(n int) []domain.ID
	MarkedIDs() []domain.ID
	ClearMarks()

	// Focus switches to the list of section and selects id
	Focus(section domain.Section, id domain.ID)
	// BeginEdit enters Editing with the buffer set to initial
	BeginEdit(id domain.ID, field domain.Field, initial string)
	ShowMainMenu()
	ShowHelp()
	// RequestExternalEdit asks for the entity's body to be opened in $EDITOR
	RequestExternalEdit(id domain.ID)

	// PendingQuit returns the store revision at which quit was armed
	PendingQuit() (uint64, bool)
	ArmQuit(revision uint64)
	DisarmQuit()
	RequestQuit()
}

// Env bundles what commands execute against
type Env struct {
	Store     *application.Store
	Session   Session
	Clipboard ports.Clipboard
}

// Command is one parsed command-mode instruction
type Command interface {
	Execute(ctx context.Context, env *Env) (*Result, error)
}

// Result contains the outcome of a successful command
type Result struct {
	Message string
	Warning bool
}
