package commands

import (
	"context"
	"fmt"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// DeleteCommand deletes the selection and the Count-1 entities after it
type DeleteCommand struct {
	Count int
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	if c.Count <= 0 {
		return nil, &application.CountError{Count: c.Count, Max: application.MaxCount}
	}
	ids := env.Session.SelectedIDs(c.Count)
	if len(ids) == 0 {
		return nil, fmt.Errorf("del: %w", application.ErrNothingSelected)
	}

	removed := env.Store.Delete(ids)
	return &Result{Message: deletedMessage(env.Session.Section().Kind(), removed)}, nil
}

// DeleteMarkedCommand deletes every marked entity in one step
type DeleteMarkedCommand struct{}

// Execute runs the delete-marked command
func (c *DeleteMarkedCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	ids := env.Session.MarkedIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("delm: %w", application.ErrNothingMarked)
	}

	removed := env.Store.Delete(ids)
	env.Session.ClearMarks()
	return &Result{Message: deletedMessage(domain.KindUnknown, removed)}, nil
}

func deletedMessage(kind domain.Kind, n int) string {
	if n == 1 {
		if kind == domain.KindUnknown {
			return "Deleted 1 item"
		}
		return fmt.Sprintf("Deleted 1 %s", kind)
	}
	return fmt.Sprintf("Deleted %d %s", n, kind.Plural())
}
