package styles

import (
	"github.com/charmbracelet/lipgloss"

	"termnotes/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List rows
	Item = lipgloss.NewStyle()

	ItemSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	ItemDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	Mark = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Overdue = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Preview = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusMode = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusDirty = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Command line and editor
	CommandLine = lipgloss.NewStyle().
			Foreground(Warning)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SeverityColor returns the color for a todo severity
func SeverityColor(sev domain.Severity) lipgloss.Color {
	switch sev {
	case domain.SeverityInfo:
		return Info
	case domain.SeverityLow:
		return Secondary
	case domain.SeverityMedium:
		return Muted
	case domain.SeverityHigh:
		return Warning
	case domain.SeverityCritical:
		return Error
	default:
		return Primary
	}
}
