package commands

import "context"

// QuitCommand ends the session. Without Force, unsaved changes require the
// command to be given twice in a row.
type QuitCommand struct {
	Force bool
}

// Execute runs the quit command
func (c *QuitCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	if c.Force {
		env.Session.RequestQuit()
		return &Result{Message: "Quit without saving"}, nil
	}

	if !env.Store.Dirty() {
		env.Session.RequestQuit()
		return &Result{Message: "Bye"}, nil
	}

	// Confirmed only if nothing changed since the warning
	if rev, armed := env.Session.PendingQuit(); armed && rev == env.Store.Revision() {
		env.Session.RequestQuit()
		return &Result{Message: "Unsaved changes discarded"}, nil
	}

	env.Session.ArmQuit(env.Store.Revision())
	return &Result{
		Message: "Unsaved changes! Use :save first, :q again to discard, or :q! to force quit",
		Warning: true,
	}, nil
}
