package commands

import (
	"context"
	"errors"
	"fmt"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// YankCommand copies the selected entity's body to the system clipboard,
// or its title when the body is empty
type YankCommand struct{}

// Execute runs the yank command
func (c *YankCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	if env.Clipboard == nil || !env.Clipboard.IsAvailable() {
		return nil, &application.IOError{Op: "yank", Err: errors.New("clipboard unavailable")}
	}
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("yank: %w", application.ErrNothingSelected)
	}

	var text, what string
	switch env.Store.KindOf(id) {
	case domain.KindNote:
		n, _ := env.Store.Note(id)
		text, what = n.Body, "note body"
		if text == "" {
			text, what = n.Title, "note title"
		}
	case domain.KindTodo:
		t, _ := env.Store.Todo(id)
		text, what = t.Body, "todo body"
		if text == "" {
			text, what = t.Title, "todo title"
		}
	default:
		return nil, &application.EntityError{ID: id, Op: "yank", Reason: application.ErrNotFound}
	}

	if err := env.Clipboard.WriteAll(text); err != nil {
		return nil, &application.IOError{Op: "yank", Err: err}
	}
	return &Result{Message: fmt.Sprintf("Copied %s to clipboard", what)}, nil
}
