package tui

import "charm.land/lipgloss/v2"

var (
	colorPrimary = lipgloss.Color("#7C6FE8")
	colorAccent  = lipgloss.Color("#39C5BB")
	colorError   = lipgloss.Color("#E85D5D")
	colorDim     = lipgloss.Color("#888888")
	colorBar     = lipgloss.Color("#5A4FCF")
	colorBarBg   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	okStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
