package view

import "github.com/charmbracelet/lipgloss"

// Palette shared by the home list and the notifications.
var (
	PrimaryColor = lipgloss.Color("#0078CF")
	MutedColor   = lipgloss.Color("#707070")
	SuccessColor = lipgloss.Color("#20B2AA")
	WarningColor = lipgloss.Color("#E5A50A")
	ErrorColor   = lipgloss.Color("#D14343")
)

// Styles groups the lipgloss styles used by the terminal renderings.
type Styles struct {
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(MutedColor),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(PrimaryColor),
		Muted:    lipgloss.NewStyle().Foreground(MutedColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1),
		Info:    lipgloss.NewStyle().Foreground(SuccessColor),
		Warning: lipgloss.NewStyle().Foreground(WarningColor),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(ErrorColor),
	}
}
