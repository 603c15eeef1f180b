// Package interview runs the questionnaire that builds the applicant
// profile, one step at a time.
package interview

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/screens/processing"
	"github.com/abhisek/maplecheck/internal/scoring"
	"github.com/abhisek/maplecheck/internal/script"
	"github.com/abhisek/maplecheck/internal/ui/components"
	"github.com/abhisek/maplecheck/internal/ui/layout"
)

// InterviewScreen implements screen.Screen for the questionnaire.
type InterviewScreen struct {
	session  *script.Session
	advice   *advice.Service
	history  []draws.Draw
	total    int
	answered int

	choice components.ChoiceList
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.ScoreProvider = (*InterviewScreen)(nil)

// New starts a fresh interview. adviceSvc may be nil.
func New(adviceSvc *advice.Service, history []draws.Draw) *InterviewScreen {
	sc := script.Interview()
	s := &InterviewScreen{
		session: script.NewSession(sc),
		advice:  adviceSvc,
		history: history,
		total:   sc.Len(),
	}
	s.syncStep()
	return s
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.focusCmd()
}

// focusCmd focuses the text input when the cursor sits on an input step.
func (s *InterviewScreen) focusCmd() tea.Cmd {
	step, err := s.session.Current()
	if err != nil || step.Kind != script.KindInput {
		return nil
	}
	return s.input.Init()
}

func (s *InterviewScreen) Title() string {
	return "Assessment"
}

// Score surfaces the running total for the header. Partial profiles score
// fine; missing answers simply contribute nothing yet.
func (s *InterviewScreen) Score() int {
	return scoring.Score(s.session.Profile()).Total
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	step, err := s.session.Current()
	if err != nil {
		return nil
	}

	hints := []layout.KeyHint{}
	switch step.Kind {
	case script.KindChoice:
		hints = append(hints,
			layout.KeyHint{Key: "↑/↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	case script.KindInput:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	default:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+R", Description: "Restart"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

// syncStep rebuilds the answer widgets for the step under the cursor.
func (s *InterviewScreen) syncStep() {
	step, err := s.session.Current()
	if err != nil {
		return
	}

	switch step.Kind {
	case script.KindChoice:
		labels := make([]string, 0, len(step.Options))
		for _, opt := range step.Options {
			labels = append(labels, opt.Label)
		}
		s.choice = components.NewChoiceList(step.Prompt, step.Detail, labels)

	case script.KindInput:
		placeholder := step.Placeholder
		if placeholder == "" {
			placeholder = "Enter a number..."
		}
		s.input = components.NewTextInput(placeholder, true, 3)
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forward(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "ctrl+r":
		s.session.Restart()
		s.answered = 0
		s.errMsg = ""
		s.syncStep()
		return s, s.focusCmd()

	case "enter":
		return s.submit()
	}

	return s.forward(msg)
}

// forward routes non-submission messages to the active answer widget.
func (s *InterviewScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	step, err := s.session.Current()
	if err != nil {
		return s, nil
	}

	var cmd tea.Cmd
	switch step.Kind {
	case script.KindChoice:
		s.choice, cmd = s.choice.Update(msg)
	case script.KindInput:
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// submit answers the current step and advances the cursor.
func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	step, err := s.session.Current()
	if err != nil {
		return s, nil
	}

	var answer string
	switch step.Kind {
	case script.KindChoice:
		if s.choice.Selected < 0 || s.choice.Selected >= len(step.Options) {
			return s, nil
		}
		answer = step.Options[s.choice.Selected].Value
	case script.KindInput:
		answer = s.input.Value()
	}

	if err := s.session.Advance(answer); err != nil {
		s.errMsg = friendlyError(err, step)
		return s, nil
	}

	s.errMsg = ""
	s.answered++

	if s.session.Done() {
		next := processing.New(s.session.Profile(), s.advice, s.history, s.restartFactory())
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.syncStep()
	return s, s.focusCmd()
}

// restartFactory lets downstream screens start a fresh interview without
// importing this package.
func (s *InterviewScreen) restartFactory() func() screen.Screen {
	adviceSvc := s.advice
	history := s.history
	return func() screen.Screen {
		return New(adviceSvc, history)
	}
}

// friendlyError maps interpreter errors to a short re-prompt message.
func friendlyError(err error, step script.Step) string {
	var malformed *script.MalformedInputError
	if errors.As(err, &malformed) {
		if step.Max != 0 {
			return fmt.Sprintf("Please enter a whole number between %d and %d.", step.Min, step.Max)
		}
		return fmt.Sprintf("Please enter a whole number of at least %d.", step.Min)
	}

	var unmapped *script.UnmappedOptionError
	if errors.As(err, &unmapped) {
		return "Please pick one of the listed options."
	}

	return "Something went wrong, please try again."
}
