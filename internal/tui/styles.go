package tui

import "github.com/charmbracelet/lipgloss"

// Colors used by the page.
var (
	colorAccent   = lipgloss.Color("#9d87ae")
	colorText     = lipgloss.Color("#ffffff")
	colorMuted    = lipgloss.Color("#7a7a7a")
	colorDesc     = lipgloss.Color("#c9c9c9")
	colorError    = lipgloss.Color("#ff5555")
	colorWarning  = lipgloss.Color("#ffb86c")
	colorInfo     = lipgloss.Color("#8be9fd")
	colorSelected = lipgloss.Color("#525252")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorDesc)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSelected)

	keysStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	selectionStyle = keysStyle.
			Background(colorSelected)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	drawerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDesc).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(colorError)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#4a4a4a")).
			Foreground(colorText).
			Padding(0, 2).
			Margin(0, 1)

	primaryButtonStyle = buttonStyle.
				Background(colorError)
)
