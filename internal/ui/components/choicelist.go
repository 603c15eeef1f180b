package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/ui/theme"
)

// ChoiceList is a single-select option list for interview questions.
type ChoiceList struct {
	Question string
	Detail   string
	Options  []string
	Selected int
}

// NewChoiceList creates a new choice list.
func NewChoiceList(question, detail string, options []string) ChoiceList {
	return ChoiceList{
		Question: question,
		Detail:   detail,
		Options:  options,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection is confirmed by the
// caller on enter; the list itself only tracks the highlight.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// View renders the choice list.
func (c ChoiceList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n"
	if c.Detail != "" {
		s += theme.Hint.Render(c.Detail) + "\n"
	}
	s += "\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("  %s%s", prefix, opt)

		if i == c.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
