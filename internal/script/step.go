package script

import "github.com/abhisek/maplecheck/internal/profile"

// StepID is a stable symbolic identifier for a step in the interview
// script. Symbolic IDs replace raw indices so a re-ordered script cannot
// silently change jump targets.
type StepID string

// DoneID is the terminal sentinel: reaching it means the interview is
// complete and the profile is ready for scoring.
const DoneID StepID = "done"

// Kind is the step kind.
type Kind int

const (
	KindStatement Kind = iota // informational, advances on continue
	KindChoice                // select one option
	KindInput                 // free numeric input
)

// Option is one selectable answer on a choice step.
type Option struct {
	Label string
	// Value is the underlying answer value; submitted answers are matched
	// against it by equality.
	Value string
	// Dest, when set, overrides the step's default next step for this option.
	Dest StepID
}

// Mutator is a custom mutation routine for steps whose effect is not a
// single-field write. It is a pure function of the profile and the answer
// value, applied by the interpreter.
type Mutator func(p *profile.Profile, value string)

// Step is one node of the interview graph. Steps are authored as an
// immutable ordered sequence; the interpreter only moves its own cursor.
type Step struct {
	ID     StepID
	Kind   Kind
	Prompt string
	// Detail is optional supporting text rendered under the prompt.
	Detail string

	// Options are the selectable answers for KindChoice steps.
	Options []Option

	// Field is the plain profile-field target, FieldNone if the step does
	// not write a field. Mutually exclusive with Mutate.
	Field profile.Field
	// Mutate is the custom mutation routine, nil if none.
	Mutate Mutator

	// Next is the default next step; empty means the next authored step.
	Next StepID

	// Min and Max bound KindInput values. Max 0 means no upper bound.
	Min int
	Max int
	// Placeholder is the input hint text for KindInput steps.
	Placeholder string
}

// OptionFor returns the option whose underlying value equals the answer.
func (s Step) OptionFor(value string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
