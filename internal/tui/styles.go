package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorWarn     lipgloss.Color = "#f9e2af"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	statTotalStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	statDoneStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	statOpenStyle  = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)

	controlLabelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	controlValueStyle  = lipgloss.NewStyle().Foreground(colorText)
	controlActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	rowStyle         = lipgloss.NewStyle().Foreground(colorText)
	rowSelectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	rowDoneStyle     = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	categoryStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	emptyTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	emptyHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
