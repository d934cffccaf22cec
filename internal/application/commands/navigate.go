package commands

import "context"

// MainMenuCommand returns to the main menu
type MainMenuCommand struct{}

// Execute runs the main menu command
func (c *MainMenuCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	env.Session.ShowMainMenu()
	return &Result{Message: "Main Menu"}, nil
}

// HelpCommand opens the help overlay
type HelpCommand struct{}

// Execute runs the help command
func (c *HelpCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	env.Session.ShowHelp()
	return &Result{Message: "Help (press any key to close)"}, nil
}
