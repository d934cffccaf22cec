package commands

import (
	"context"
	"fmt"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// RenameCommand starts editing the title of the selected entity. The store
// is only changed when the edit is committed.
type RenameCommand struct{}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("rnm: %w", application.ErrNothingSelected)
	}

	var title string
	switch env.Store.KindOf(id) {
	case domain.KindNote:
		n, _ := env.Store.Note(id)
		title = n.Title
	case domain.KindTodo:
		t, _ := env.Store.Todo(id)
		title = t.Title
	default:
		return nil, &application.EntityError{ID: id, Op: "rnm", Reason: application.ErrNotFound}
	}

	env.Session.BeginEdit(id, domain.FieldTitle, title)
	return &Result{Message: "Enter new name:"}, nil
}
