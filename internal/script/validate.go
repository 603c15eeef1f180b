package script

import (
	"fmt"
	"strings"

	"github.com/abhisek/maplecheck/internal/profile"
)

// validate performs all structural checks on the step sequence.
// Returns a combined error describing all problems found, or nil if valid.
func (sc *Script) validate() error {
	var errs []string

	resolves := func(id StepID) bool {
		if id == "" || id == DoneID {
			return true
		}
		_, ok := sc.index[id]
		return ok
	}

	for _, s := range sc.steps {
		if resolvedErrs := checkStep(s); len(resolvedErrs) > 0 {
			errs = append(errs, resolvedErrs...)
		}
		if !resolves(s.Next) {
			errs = append(errs, fmt.Sprintf("step %q: default next %q does not resolve", s.ID, s.Next))
		}
		for _, opt := range s.Options {
			if !resolves(opt.Dest) {
				errs = append(errs, fmt.Sprintf("step %q: option %q destination %q does not resolve", s.ID, opt.Value, opt.Dest))
			}
		}
	}

	// Reachability from the entry step. Unreachable steps are dead script
	// content and almost always an authoring mistake.
	reached := map[StepID]bool{}
	var walk func(id StepID)
	walk = func(id StepID) {
		if id == DoneID || reached[id] {
			return
		}
		i, ok := sc.index[id]
		if !ok {
			return
		}
		reached[id] = true
		s := sc.steps[i]
		walk(sc.defaultNext(s))
		for _, opt := range s.Options {
			if opt.Dest != "" {
				walk(opt.Dest)
			}
		}
	}
	walk(sc.Entry())
	for _, s := range sc.steps {
		if !reached[s.ID] {
			errs = append(errs, fmt.Sprintf("step %q is unreachable from %q", s.ID, sc.Entry()))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("script validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// checkStep validates a single step's internal consistency.
func checkStep(s Step) []string {
	var errs []string

	if s.ID == "" {
		errs = append(errs, "step with empty ID")
	}
	if s.Prompt == "" {
		errs = append(errs, fmt.Sprintf("step %q: empty prompt", s.ID))
	}
	if s.Field != profile.FieldNone && s.Mutate != nil {
		errs = append(errs, fmt.Sprintf("step %q: both field target and mutation routine set", s.ID))
	}

	switch s.Kind {
	case KindStatement:
		if len(s.Options) > 0 {
			errs = append(errs, fmt.Sprintf("statement step %q has options", s.ID))
		}
		if s.Field != profile.FieldNone || s.Mutate != nil {
			errs = append(errs, fmt.Sprintf("statement step %q writes the profile", s.ID))
		}
	case KindChoice:
		if len(s.Options) == 0 {
			errs = append(errs, fmt.Sprintf("choice step %q has no options", s.ID))
		}
		seen := map[string]bool{}
		for _, opt := range s.Options {
			if seen[opt.Value] {
				errs = append(errs, fmt.Sprintf("choice step %q: duplicate option value %q", s.ID, opt.Value))
			}
			seen[opt.Value] = true
		}
		if s.Field == profile.FieldNone && s.Mutate == nil {
			errs = append(errs, fmt.Sprintf("choice step %q writes nothing", s.ID))
		}
	case KindInput:
		if len(s.Options) > 0 {
			errs = append(errs, fmt.Sprintf("input step %q has options", s.ID))
		}
		if s.Field == profile.FieldNone && s.Mutate == nil {
			errs = append(errs, fmt.Sprintf("input step %q writes nothing", s.ID))
		}
		if s.Max != 0 && s.Max < s.Min {
			errs = append(errs, fmt.Sprintf("input step %q: max %d below min %d", s.ID, s.Max, s.Min))
		}
	default:
		errs = append(errs, fmt.Sprintf("step %q: unknown kind %d", s.ID, s.Kind))
	}

	return errs
}
