package tui

import "github.com/charmbracelet/lipgloss"

// Rose Pine / Rose Pine Dawn, matching the version banner.
var (
	colorText   = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}
	colorKey    = lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"}
	colorChip   = lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}
	colorGold   = lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginTop(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorKey)

	chipStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorChip).
			Padding(0, 1).
			MarginLeft(1)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorGold).
				Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true).
			MarginTop(1)

	flashStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
