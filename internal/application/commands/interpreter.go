package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"termnotes/internal/application"
	"termnotes/internal/ports"
)

// Level classifies a status line
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Status is the single line shown after a command runs
type Status struct {
	Text  string
	Level Level
}

// IsError reports whether the status describes a failure
func (s Status) IsError() bool {
	return s.Level == LevelError
}

// Interpreter parses and executes command-mode text. Every call yields
// exactly one Status; failures never escape as errors or panics.
type Interpreter struct {
	store     *application.Store
	clipboard ports.Clipboard
	logger    *slog.Logger
}

// NewInterpreter creates an interpreter bound to store. clipboard may be nil.
func NewInterpreter(store *application.Store, clipboard ports.Clipboard, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Interpreter{
		store:     store,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Run executes input against the store and session
func (i *Interpreter) Run(ctx context.Context, sess Session, input string) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("command panicked", "input", input, "panic", r)
			status = Status{Text: fmt.Sprintf("internal error running %q: %v", input, r), Level: LevelError}
		}
	}()

	cmd, err := Parse(input)
	if _, isQuit := cmd.(*QuitCommand); err != nil || !isQuit {
		sess.DisarmQuit()
	}
	if err != nil {
		i.logger.Debug("command rejected", "input", input, "error", err)
		return errorStatus(err)
	}

	env := &Env{
		Store:     i.store,
		Session:   sess,
		Clipboard: i.clipboard,
	}
	result, err := cmd.Execute(ctx, env)
	if err != nil {
		i.logger.Info("command failed", "input", input, "error", err)
		return errorStatus(err)
	}

	i.logger.Debug("command executed", "input", input, "message", result.Message)
	if result.Warning {
		return Status{Text: result.Message, Level: LevelWarning}
	}
	return Status{Text: result.Message, Level: LevelInfo}
}

func errorStatus(err error) Status {
	return Status{Text: "Error: " + err.Error(), Level: LevelError}
}
