package commands

import (
	"context"
	"fmt"

	"termnotes/internal/application"
)

// TagCommand adds or removes a tag on the selected entity
type TagCommand struct {
	Tag    string
	Remove bool
}

// Execute runs the tag or untag command
func (c *TagCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	verb := "tag"
	if c.Remove {
		verb = "untag"
	}
	id, ok := env.Session.SelectedID()
	if !ok {
		return nil, fmt.Errorf("%s: %w", verb, application.ErrNothingSelected)
	}

	if c.Remove {
		removed, err := env.Store.RemoveTag(id, c.Tag)
		if err != nil {
			return nil, err
		}
		if !removed {
			return &Result{Message: fmt.Sprintf("Not tagged %q", c.Tag), Warning: true}, nil
		}
		return &Result{Message: fmt.Sprintf("Removed tag %q", c.Tag)}, nil
	}

	added, err := env.Store.AddTag(id, c.Tag)
	if err != nil {
		return nil, err
	}
	if !added {
		return &Result{Message: fmt.Sprintf("Already tagged %q", c.Tag), Warning: true}, nil
	}
	return &Result{Message: fmt.Sprintf("Tagged %q", c.Tag)}, nil
}
