package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/ui/theme"
)

// ProgressBar is a horizontal fill bar with an optional label on the
// left and an optional percentage on the right.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar. Width is the total rendered
// width including label and percentage.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. Percent is clamped to [0,1].
func (p ProgressBar) View() string {
	var left string
	if p.Label != "" {
		left = theme.Body.Foreground(theme.Text).Render(p.Label) + "  "
	}

	reserved := lipgloss.Width(left)
	if p.ShowPercent {
		reserved += 6 // "  100%"
	}
	barWidth := max(p.Width-reserved, 4)

	pct := min(max(p.Percent, 0), 1)
	filled := int(float64(barWidth) * pct)

	out := left +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		out += theme.Hint.Render(fmt.Sprintf("  %d%%", int(pct*100)))
	}
	return out
}
