package script

import "fmt"

// InvalidCursorError reports a cursor that references no step and is not
// the terminal sentinel. This is fatal to the interview: the only recovery
// is a restart.
type InvalidCursorError struct {
	Cursor StepID
}

func (e *InvalidCursorError) Error() string {
	return fmt.Sprintf("invalid cursor %q: no such step", e.Cursor)
}

// UnmappedOptionError reports a submitted answer that matches no option on
// a choice step. The cursor is left unchanged so the caller can re-prompt.
type UnmappedOptionError struct {
	Step  StepID
	Value string
}

func (e *UnmappedOptionError) Error() string {
	return fmt.Sprintf("step %q: answer %q matches no option", e.Step, e.Value)
}

// MalformedInputError reports a free-value answer that fails the step's
// expected shape or range. Recovered locally by re-prompting; never
// silently coerced.
type MalformedInputError struct {
	Step   StepID
	Raw    string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("step %q: malformed input %q: %s", e.Step, e.Raw, e.Reason)
}
