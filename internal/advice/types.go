// Package advice generates a personalized improvement plan for a scored
// profile using an LLM. The plan is strictly optional: every screen that
// shows one must also work without it.
package advice

import (
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/scoring"
)

// Plan is an LLM-generated improvement plan for one scored profile.
type Plan struct {
	Summary     string
	Suggestions []Suggestion
}

// Suggestion is one concrete improvement with its estimated point impact.
type Suggestion struct {
	Action string
	Impact string
}

// Input holds everything the plan generation prompt needs.
type Input struct {
	Profile    profile.Profile
	Breakdown  scoring.Breakdown
	Comparison draws.Result
}
