package script

import (
	"strconv"
	"strings"

	"github.com/abhisek/maplecheck/internal/profile"
)

// Advance processes one answered step: applies the step's profile effect
// and resolves the next cursor. It is a pure function of the script,
// cursor, profile, and answer; the Session wrapper supplies state.
//
// Precedence per step:
//  1. custom mutation routine, if any
//  2. plain field write, if any
//  3. option override destination for the matched answer
//  4. the step's default next, falling through to the next authored step
//
// On UnmappedOptionError or MalformedInputError the profile is untouched
// and the returned cursor equals the input cursor, so the caller can
// re-prompt.
func Advance(sc *Script, cursor StepID, p *profile.Profile, answer string) (StepID, error) {
	step, err := sc.Step(cursor)
	if err != nil {
		return cursor, err
	}

	next := sc.defaultNext(step)

	switch step.Kind {
	case KindStatement:
		// No profile effect; the answer is ignored.

	case KindChoice:
		opt, ok := step.OptionFor(answer)
		if !ok {
			return cursor, &UnmappedOptionError{Step: step.ID, Value: answer}
		}
		if step.Mutate != nil {
			step.Mutate(p, opt.Value)
		} else if step.Field != profile.FieldNone {
			if err := profile.Set(p, step.Field, opt.Value); err != nil {
				// Option tokens are validated against field parsers at
				// authoring time; a failure here is a script defect.
				return cursor, err
			}
		}
		if opt.Dest != "" {
			next = opt.Dest
		}

	case KindInput:
		n, err := parseCount(step, answer)
		if err != nil {
			return cursor, err
		}
		if step.Mutate != nil {
			step.Mutate(p, strconv.Itoa(n))
		} else {
			if err := profile.Set(p, step.Field, n); err != nil {
				return cursor, err
			}
		}
	}

	return next, nil
}

// parseCount parses a numeric input answer and screens its range, so that
// out-of-shape values never reach the profile or the scoring engine.
func parseCount(step Step, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &MalformedInputError{Step: step.ID, Raw: raw, Reason: "empty"}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &MalformedInputError{Step: step.ID, Raw: raw, Reason: "not a number"}
	}
	if n < step.Min {
		return 0, &MalformedInputError{Step: step.ID, Raw: raw, Reason: "below minimum"}
	}
	if step.Max != 0 && n > step.Max {
		return 0, &MalformedInputError{Step: step.ID, Raw: raw, Reason: "above maximum"}
	}
	return n, nil
}

// Session tracks one interview run: the cursor and the profile being
// accumulated. All transitions are synchronous; a Session is not safe for
// concurrent use.
type Session struct {
	script  *Script
	cursor  StepID
	profile profile.Profile
}

// NewSession starts a session at the script's entry step with a default
// profile.
func NewSession(sc *Script) *Session {
	return &Session{
		script:  sc,
		cursor:  sc.Entry(),
		profile: profile.Default(),
	}
}

// Current returns the step at the cursor. Calling Current when Done is an
// InvalidCursorError.
func (s *Session) Current() (Step, error) {
	return s.script.Step(s.cursor)
}

// Cursor returns the current cursor.
func (s *Session) Cursor() StepID {
	return s.cursor
}

// Done reports whether the interview has reached the terminal sentinel.
func (s *Session) Done() bool {
	return s.cursor == DoneID
}

// Advance submits the answer for the current step. On a recoverable error
// the cursor and profile are unchanged.
func (s *Session) Advance(answer string) error {
	next, err := Advance(s.script, s.cursor, &s.profile, answer)
	if err != nil {
		return err
	}
	s.cursor = next
	return nil
}

// Profile returns a copy of the accumulated profile.
func (s *Session) Profile() profile.Profile {
	return s.profile
}

// Restart resets the cursor and profile together. Idempotent and callable
// from any state, including a dead cursor.
func (s *Session) Restart() {
	s.cursor = s.script.Entry()
	s.profile = profile.Default()
}
