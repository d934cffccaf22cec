package commands

import (
	"context"
	"fmt"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// ExternalEditCommand hands the selected entity's body to the user's
// editor. The body is replaced when the editor exits.
type ExternalEditCommand struct{}

// Execute runs the edit command
func (c *ExternalEditCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("edit: %w", application.ErrNothingSelected)
	}
	if env.Store.KindOf(id) == domain.KindUnknown {
		return nil, &application.EntityError{ID: id, Op: "edit", Reason: application.ErrNotFound}
	}

	env.Session.RequestExternalEdit(id)
	return &Result{Message: "Opening editor..."}, nil
}

// BodyCommand starts editing the body of the selected entity in place
type BodyCommand struct{}

// Execute runs the body command
func (c *BodyCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("body: %w", application.ErrNothingSelected)
	}
	body, ok := env.Store.Body(id)
	if !ok {
		return nil, &application.EntityError{ID: id, Op: "body", Reason: application.ErrNotFound}
	}

	env.Session.BeginEdit(id, domain.FieldBody, body)
	return &Result{Message: "Editing body (Enter saves, Esc cancels)"}, nil
}
