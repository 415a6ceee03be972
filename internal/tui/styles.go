package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F0F0F0")).
			Background(lipgloss.Color("#4F46E5")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(1, 4).
			Width(44).
			Align(lipgloss.Center)
	flippedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#C89A3A"))
	gridCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1).
			Width(20).
			Align(lipgloss.Center)
	gridSelectedStyle = gridCardStyle.
				BorderForeground(lipgloss.Color("#4F46E5"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	mainTextStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	romanStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#B8B8B8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	progressFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F46E5"))
	progressEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
)
