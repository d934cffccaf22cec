package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Opener hands text to the user's editor through a temporary file
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	tempDir  string
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Prepare writes text to a temporary file and returns its path with the
// command that edits it. Run the command with bubbletea's ExecProcess, then
// call Collect.
func (o *Opener) Prepare(text string) (string, *exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return "", nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp(o.tempDir, "termnotes-*.md")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return path, cmd, nil
}

// Collect reads the edited text back and removes the temporary file. The
// single trailing newline most editors add is dropped.
func (o *Opener) Collect(path string) (string, error) {
	defer os.Remove(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited text: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := o.getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := o.getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
