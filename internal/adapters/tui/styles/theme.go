package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Muted   = lipgloss.Color("#6B7280") // Gray
	Error   = lipgloss.Color("#EF4444") // Red

	// Failure banner, e.g. `error: could not invoke editor "code"`
	ErrorTitle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Underlying error text shown beneath the banner
	ErrorDetail = lipgloss.NewStyle().
			PaddingLeft(2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
