// Package results shows the score breakdown, the verdict against recent
// draws, and the optional LLM improvement plan.
package results

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/screens/drawhistory"
	"github.com/abhisek/maplecheck/internal/scoring"
	"github.com/abhisek/maplecheck/internal/ui/layout"
)

const planPollInterval = 400 * time.Millisecond

type planPollMsg time.Time

// ResultsScreen presents the final assessment.
type ResultsScreen struct {
	profile    profile.Profile
	breakdown  scoring.Breakdown
	comparison draws.Result
	adviceSvc  *advice.Service
	history    []draws.Draw
	restart    func() screen.Screen

	// refCode identifies this assessment in conversation ("my result
	// a1b2c3d4"); it is display-only and never persisted.
	refCode string

	plan        *advice.Plan
	planPending bool
	planPolls   int
}

// maxPlanPolls bounds how long the screen waits for the plan; generation
// failures leave the slot empty, so the poll loop needs its own stop.
const maxPlanPolls = 75

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.ScoreProvider = (*ResultsScreen)(nil)

// New creates the results screen for a scored profile.
func New(p profile.Profile, bd scoring.Breakdown, cmp draws.Result, adviceSvc *advice.Service, history []draws.Draw, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		profile:    p,
		breakdown:  bd,
		comparison: cmp,
		adviceSvc:  adviceSvc,
		history:    history,
		restart:    restart,
		refCode:    uuid.New().String()[:8],
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) Score() int {
	return r.breakdown.Total
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.adviceSvc == nil {
		return nil
	}
	r.planPending = true
	return pollPlan()
}

func pollPlan() tea.Cmd {
	return tea.Tick(planPollInterval, func(t time.Time) tea.Msg {
		return planPollMsg(t)
	})
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "New assessment"},
		{Key: "D", Description: "Draw history"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planPollMsg:
		if !r.planPending {
			return r, nil
		}
		plan, ok := r.adviceSvc.ConsumePlan()
		if ok {
			r.plan = plan
			r.planPending = false
			return r, nil
		}
		r.planPolls++
		if r.planPolls >= maxPlanPolls {
			r.planPending = false
			return r, nil
		}
		return r, pollPlan()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "r", "R":
			if r.restart != nil {
				next := r.restart()
				return r, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
		case "d", "D":
			return r, func() tea.Msg {
				return router.PushScreenMsg{Screen: drawhistory.New(r.history)}
			}
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return r, nil
}
