package clipboard

import (
	"github.com/atotto/clipboard"
)

// System implements ports.Clipboard using the platform clipboard tools
type System struct{}

// NewSystem creates a clipboard adapter
func NewSystem() *System {
	return &System{}
}

// WriteAll copies text to the clipboard
func (s *System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a clipboard backend was found
func (s *System) IsAvailable() bool {
	return !clipboard.Unsupported
}
