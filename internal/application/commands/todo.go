package commands

import (
	"context"
	"fmt"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// SeverityCommand sets the severity of the selected todo
type SeverityCommand struct {
	Severity domain.Severity
}

// Execute runs the severity command
func (c *SeverityCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("sev: %w", application.ErrNothingSelected)
	}
	if err := env.Store.SetSeverity(id, c.Severity); err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Severity set to %s", c.Severity)}, nil
}

// DueCommand sets or clears the due date of the selected todo
type DueCommand struct {
	Due *domain.Date
}

// Execute runs the due command
func (c *DueCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("due: %w", application.ErrNothingSelected)
	}
	if err := env.Store.SetDue(id, c.Due); err != nil {
		return nil, err
	}
	if c.Due == nil {
		return &Result{Message: "Due date cleared"}, nil
	}
	return &Result{Message: fmt.Sprintf("Due %s", c.Due)}, nil
}
