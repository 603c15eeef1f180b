package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/scoring"
	"github.com/abhisek/maplecheck/internal/ui/theme"
)

const panelWidth = 44

func (r *ResultsScreen) View(width, height int) string {
	left := r.renderBreakdown()
	right := r.renderVerdict()

	if r.adviceSvc != nil {
		right = lipgloss.JoinVertical(lipgloss.Left, right, "", r.renderPlan())
	}

	var body string
	if width >= 2*panelWidth+12 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(fmt.Sprintf("Your CRS score: %d", r.breakdown.Total)),
		theme.Subtitle.Render(fmt.Sprintf("%s  ·  ref %s", r.breakdown.Mode.DisplayName(), r.refCode)),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, header, "", body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderBreakdown() string {
	bd := r.breakdown

	var b strings.Builder
	b.WriteString(sectionTitle("Score breakdown"))

	b.WriteString(scoreLine("Age", bd.Core.Age))
	b.WriteString(scoreLine("Education", bd.Core.Education))
	b.WriteString(scoreLine("Language", bd.Core.Language))
	b.WriteString(scoreLine("Canadian work", bd.Core.CanadianWork))
	b.WriteString(subtotalLine("Core", bd.Core.Subtotal))

	if bd.Mode == scoring.ModeWithPartner {
		b.WriteString("\n")
		b.WriteString(scoreLine("Partner education", bd.Partner.Education))
		b.WriteString(scoreLine("Partner language", bd.Partner.Language))
		b.WriteString(scoreLine("Partner work", bd.Partner.Work))
		b.WriteString(subtotalLine("Partner", bd.Partner.Subtotal))
	}

	b.WriteString("\n")
	b.WriteString(subtotalLine("Transferability", bd.Transferability))

	b.WriteString("\n")
	b.WriteString(scoreLine("Provincial nomination", bd.Additional.Nomination))
	b.WriteString(scoreLine("Sibling in Canada", bd.Additional.Sibling))
	b.WriteString(scoreLine("Canadian study", bd.Additional.CanadianStudy))
	b.WriteString(scoreLine("French bonus", bd.Additional.FrenchBonus))
	b.WriteString(subtotalLine("Additional", bd.Additional.Subtotal))

	return panel(b.String())
}

func (r *ResultsScreen) renderVerdict() string {
	var b strings.Builder
	b.WriteString(sectionTitle("Against recent draws"))

	if len(r.comparison.Eligible) == 0 {
		b.WriteString(theme.Hint.Render("No draw history loaded.") + "\n")
		return panel(b.String())
	}

	for _, d := range r.comparison.Eligible {
		name := draws.StreamDisplayName(d.Stream)
		if d.Cutoff <= r.breakdown.Total {
			b.WriteString(theme.Eligible.Render("✓") +
				lineBody(fmt.Sprintf(" %s — cutoff %d", name, d.Cutoff)) + "\n")
		} else {
			b.WriteString(theme.Ineligible.Render("✗") +
				lineBody(fmt.Sprintf(" %s — cutoff %d (%d short)", name, d.Cutoff, d.Cutoff-r.breakdown.Total)) + "\n")
		}
	}

	b.WriteString("\n")
	if r.comparison.Passed {
		b.WriteString(theme.Eligible.Render("Your score would have made at least one recent draw."))
	} else {
		b.WriteString(theme.Ineligible.Render("Your score is below every recent cutoff you qualify for."))
	}
	b.WriteString("\n")

	return panel(b.String())
}

func (r *ResultsScreen) renderPlan() string {
	var b strings.Builder
	b.WriteString(sectionTitle("Improvement plan"))

	switch {
	case r.planPending:
		b.WriteString(theme.Hint.Render("Thinking about your options...") + "\n")
	case r.plan == nil:
		b.WriteString(theme.Hint.Render("Plan unavailable.") + "\n")
	default:
		b.WriteString(theme.Body.Render(r.plan.Summary) + "\n")
		for _, sug := range r.plan.Suggestions {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("▸ "+sug.Action) + "\n")
			b.WriteString(theme.Hint.Render("  "+sug.Impact) + "\n")
		}
	}

	return panel(b.String())
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(s) + "\n\n"
}

func scoreLine(label string, points int) string {
	gap := panelWidth - 8 - len(label) - 4
	if gap < 1 {
		gap = 1
	}
	return theme.Body.Render(label) +
		strings.Repeat(" ", gap) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%4d", points)) + "\n"
}

func subtotalLine(label string, points int) string {
	gap := panelWidth - 8 - len(label) - 4
	if gap < 1 {
		gap = 1
	}
	style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	return style.Render(label) +
		strings.Repeat(" ", gap) +
		style.Render(fmt.Sprintf("%4d", points)) + "\n"
}

func lineBody(s string) string {
	return theme.Body.Render(s)
}

func panel(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(panelWidth).
		Render(strings.TrimRight(content, "\n"))
}
