package script

import "fmt"

// Script holds the immutable ordered step sequence with an ID index.
type Script struct {
	steps []Step
	index map[StepID]int
}

// New builds a Script from authored steps and validates it. An invalid
// script is a configuration defect, caught here once at startup rather
// than surfacing as a runtime error mid-interview.
func New(steps []Step) (*Script, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}

	index := make(map[StepID]int, len(steps))
	for i, s := range steps {
		if s.ID == DoneID {
			return nil, fmt.Errorf("step %d uses the reserved sentinel ID %q", i, DoneID)
		}
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate step ID %q", s.ID)
		}
		index[s.ID] = i
	}

	sc := &Script{steps: steps, index: index}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// MustNew is New for statically authored scripts; it panics on a defect.
func MustNew(steps []Step) *Script {
	sc, err := New(steps)
	if err != nil {
		panic(err)
	}
	return sc
}

// Entry returns the ID of the first authored step.
func (sc *Script) Entry() StepID {
	return sc.steps[0].ID
}

// Step returns the step for the given cursor. The terminal sentinel is a
// valid cursor but has no step.
func (sc *Script) Step(id StepID) (Step, error) {
	i, ok := sc.index[id]
	if !ok {
		return Step{}, &InvalidCursorError{Cursor: id}
	}
	return sc.steps[i], nil
}

// Steps returns the authored sequence in order.
func (sc *Script) Steps() []Step {
	out := make([]Step, len(sc.steps))
	copy(out, sc.steps)
	return out
}

// Len returns the number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// defaultNext resolves the fall-through destination for a step: its
// declared Next, else the next authored step, else the terminal sentinel.
func (sc *Script) defaultNext(s Step) StepID {
	if s.Next != "" {
		return s.Next
	}
	i := sc.index[s.ID]
	if i+1 < len(sc.steps) {
		return sc.steps[i+1].ID
	}
	return DoneID
}
