package interview

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/script"
	"github.com/abhisek/maplecheck/internal/ui/components"
	"github.com/abhisek/maplecheck/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	step, err := s.session.Current()
	if err != nil {
		return ""
	}

	var sections []string

	sections = append(sections, s.renderProgress(width))
	sections = append(sections, "")

	switch step.Kind {
	case script.KindStatement:
		sections = append(sections, s.renderStatement(step))
	case script.KindChoice:
		sections = append(sections, s.choice.View())
	case script.KindInput:
		sections = append(sections, s.renderInput(step))
	}

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Ineligible.Render("✗ "+s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	card := theme.Card.
		Width(cardWidth(width)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func cardWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (s *InterviewScreen) renderProgress(width int) string {
	pct := 0.0
	if s.total > 0 {
		pct = float64(s.answered) / float64(s.total)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", min(s.answered+1, s.total), s.total),
		pct, false, cardWidth(width)-6)
	return bar.View()
}

func (s *InterviewScreen) renderStatement(step script.Step) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(step.Prompt)

	out := prompt
	if step.Detail != "" {
		out += "\n\n" + theme.Body.Render(step.Detail)
	}
	out += "\n\n" + components.NewButton("CONTINUE", true).View()
	return out
}

func (s *InterviewScreen) renderInput(step script.Step) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(step.Prompt)

	out := prompt
	if step.Detail != "" {
		out += "\n" + theme.Hint.Render(step.Detail)
	}
	out += "\n\n" + s.input.View()
	return out
}
