// Package processing is the short scoring interstitial between the
// interview and the results. It computes the breakdown and the draw
// comparison, kicks off plan generation, and animates a progress bar
// while doing so.
package processing

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/screens/results"
	"github.com/abhisek/maplecheck/internal/scoring"
	"github.com/abhisek/maplecheck/internal/ui/components"
	"github.com/abhisek/maplecheck/internal/ui/theme"
)

const (
	tickInterval = 80 * time.Millisecond
	totalDur     = 1600 * time.Millisecond
)

var phases = []string{
	"Scoring core factors...",
	"Applying transferability...",
	"Comparing against recent draws...",
}

type tickMsg time.Time

// ProcessingScreen runs the scoring pipeline behind a progress animation.
type ProcessingScreen struct {
	profile    profile.Profile
	adviceSvc  *advice.Service
	history    []draws.Draw
	restart    func() screen.Screen
	breakdown  scoring.Breakdown
	comparison draws.Result
	elapsed    time.Duration
	done       bool
}

var _ screen.Screen = (*ProcessingScreen)(nil)

// New creates a ProcessingScreen for a completed interview profile.
func New(p profile.Profile, adviceSvc *advice.Service, history []draws.Draw, restart func() screen.Screen) *ProcessingScreen {
	return &ProcessingScreen{
		profile:   p,
		adviceSvc: adviceSvc,
		history:   history,
		restart:   restart,
	}
}

func (p *ProcessingScreen) Title() string {
	return "Scoring"
}

func (p *ProcessingScreen) Init() tea.Cmd {
	p.breakdown = scoring.Score(p.profile)
	p.comparison = draws.Compare(p.breakdown.Total, p.profile, p.history)

	if p.adviceSvc != nil {
		p.adviceSvc.RequestPlan(context.Background(), advice.Input{
			Profile:    p.profile,
			Breakdown:  p.breakdown,
			Comparison: p.comparison,
		})
	}

	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *ProcessingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		return p, nil
	}

	p.elapsed += tickInterval
	if p.elapsed < totalDur {
		return p, tick()
	}

	if p.done {
		return p, nil
	}
	p.done = true

	next := results.New(p.profile, p.breakdown, p.comparison, p.adviceSvc, p.history, p.restart)
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (p *ProcessingScreen) View(width, height int) string {
	pct := float64(p.elapsed) / float64(totalDur)
	if pct > 1 {
		pct = 1
	}

	phase := phases[len(phases)-1]
	if idx := int(pct * float64(len(phases))); idx < len(phases) {
		phase = phases[idx]
	}

	bar := components.NewProgressBar("", pct, true, 44)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Crunching the numbers"),
		"",
		bar.View(),
		"",
		theme.Hint.Render(phase),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
