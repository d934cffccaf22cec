package commands

import (
	"context"
	"fmt"

	"termnotes/internal/domain"
)

// CreateCommand appends Count new notes or todos and focuses the first one
type CreateCommand struct {
	Kind  domain.Kind
	Count int
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	ids, err := env.Store.Create(c.Kind, c.Count)
	if err != nil {
		return nil, err
	}

	env.Session.Focus(domain.SectionFor(c.Kind), ids[0])

	if len(ids) == 1 {
		return &Result{Message: fmt.Sprintf("New %s created", c.Kind)}, nil
	}
	return &Result{Message: fmt.Sprintf("Created %d %s", len(ids), c.Kind.Plural())}, nil
}
