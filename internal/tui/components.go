package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderProgressBar draws a horizontal completion bar with a percent label.
func renderProgressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	bar := lipgloss.NewStyle().Background(colorBar).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(colorBarBg).Render(strings.Repeat(" ", empty))

	return bar + labelStyle.Render(fmt.Sprintf("  %d%%", int(percent*100)))
}

// renderSlider draws one question's 0-100 slider with its current value.
func renderSlider(value, width int, answered bool) string {
	if width < 10 {
		width = 10
	}

	filled := value * width / 100
	if filled > width {
		filled = width
	}

	fillColor := colorBarBg
	if answered {
		fillColor = colorAccent
	}

	bar := lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(colorBarBg).Render(strings.Repeat(" ", width-filled))

	mark := "  "
	if answered {
		mark = okStyle.Render("✓ ")
	}

	return fmt.Sprintf("%s%s %3d", mark, bar, value)
}

// formatDuration renders seconds as 分/秒 like the on-page timer.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d分%d秒", seconds/60, seconds%60)
}
