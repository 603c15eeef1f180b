// Package drawhistory lists the recent invitation rounds used for score
// comparison.
package drawhistory

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/ui/layout"
	"github.com/abhisek/maplecheck/internal/ui/theme"
)

// DrawHistoryScreen shows the loaded draw rounds in a table.
type DrawHistoryScreen struct {
	history []draws.Draw
	offset  int
}

var _ screen.Screen = (*DrawHistoryScreen)(nil)
var _ screen.KeyHintProvider = (*DrawHistoryScreen)(nil)

// New creates a DrawHistoryScreen over the given rounds.
func New(history []draws.Draw) *DrawHistoryScreen {
	return &DrawHistoryScreen{history: history}
}

func (d *DrawHistoryScreen) Init() tea.Cmd {
	return nil
}

func (d *DrawHistoryScreen) Title() string {
	return "Draw History"
}

func (d *DrawHistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DrawHistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if d.offset > 0 {
			d.offset--
		}
	case "down", "j":
		if d.offset < len(d.history)-1 {
			d.offset++
		}
	}

	return d, nil
}

const (
	dateWidth   = 12
	labelWidth  = 34
	streamWidth = 24
	cutoffWidth = 6
)

func (d *DrawHistoryScreen) View(width, height int) string {
	if len(d.history) == 0 {
		msg := theme.Hint.Render("No draw history loaded.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	headStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	head := headStyle.Render(
		pad("DATE", dateWidth) + pad("ROUND", labelWidth) + pad("STREAM", streamWidth) + "CUTOFF")

	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", dateWidth+labelWidth+streamWidth+cutoffWidth))

	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	end := min(d.offset+visible, len(d.history))

	rows := make([]string, 0, end-d.offset)
	for _, dr := range d.history[d.offset:end] {
		row := theme.Body.Render(pad(dr.Date, dateWidth)+pad(dr.Label, labelWidth)) +
			theme.Hint.Render(pad(draws.StreamDisplayName(dr.Stream), streamWidth)) +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d", dr.Cutoff))
		rows = append(rows, row)
	}

	var footer string
	if len(d.history) > visible {
		footer = theme.Hint.Render(fmt.Sprintf("showing %d–%d of %d", d.offset+1, end, len(d.history)))
	}

	sections := []string{
		theme.Title.Render("Recent invitation rounds"),
		"",
		head,
		rule,
		strings.Join(rows, "\n"),
	}
	if footer != "" {
		sections = append(sections, "", footer)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// pad truncates or right-pads a cell to the column width.
func pad(s string, w int) string {
	if len(s) > w-2 {
		s = s[:w-2]
	}
	return s + strings.Repeat(" ", w-len(s))
}
