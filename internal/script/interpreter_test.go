package script

import (
	"errors"
	"testing"

	"github.com/abhisek/maplecheck/internal/profile"
)

// testScript is a small three-branch script exercising every step kind.
func testScript(t *testing.T) *Script {
	t.Helper()
	sc, err := New([]Step{
		{ID: "start", Kind: KindStatement, Prompt: "hello"},
		{
			ID:     "status",
			Kind:   KindChoice,
			Prompt: "status?",
			Field:  profile.FieldMaritalStatus,
			Options: []Option{
				{Label: "Single", Value: profile.TokenSingle, Dest: "years"},
				{Label: "Married", Value: profile.TokenMarried},
			},
		},
		{
			ID:     "accompany",
			Kind:   KindChoice,
			Prompt: "coming along?",
			Field:  profile.FieldPartnerAccompanying,
			Options: []Option{
				{Label: "Yes", Value: profile.TokenYes},
				{Label: "No", Value: profile.TokenNo},
			},
		},
		{
			ID:     "years",
			Kind:   KindInput,
			Prompt: "years?",
			Field:  profile.FieldCanadianWorkYears,
			Min:    0,
			Max:    60,
			Next:   DoneID,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sc
}

func TestAdvanceStatementIgnoresAnswer(t *testing.T) {
	sc := testScript(t)
	p := profile.Default()
	next, err := Advance(sc, "start", &p, "anything at all")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next != "status" {
		t.Errorf("next = %q, want status", next)
	}
	if p != profile.Default() {
		t.Errorf("statement step mutated the profile: %+v", p)
	}
}

func TestAdvanceChoiceWritesFieldAndBranches(t *testing.T) {
	sc := testScript(t)

	p := profile.Default()
	next, err := Advance(sc, "status", &p, profile.TokenSingle)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next != "years" {
		t.Errorf("single branch next = %q, want years", next)
	}
	if p.MaritalStatus != profile.Single {
		t.Errorf("marital status = %v", p.MaritalStatus)
	}

	// The other option has no override and falls through in authored order.
	p = profile.Default()
	next, err = Advance(sc, "status", &p, profile.TokenMarried)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next != "accompany" {
		t.Errorf("married branch next = %q, want accompany", next)
	}
	if p.MaritalStatus != profile.Married {
		t.Errorf("marital status = %v", p.MaritalStatus)
	}
}

func TestAdvanceUnmappedOption(t *testing.T) {
	sc := testScript(t)
	p := profile.Default()
	before := p
	next, err := Advance(sc, "status", &p, "divorced")
	var unmapped *UnmappedOptionError
	if !errors.As(err, &unmapped) {
		t.Fatalf("err = %v, want UnmappedOptionError", err)
	}
	if unmapped.Step != "status" || unmapped.Value != "divorced" {
		t.Errorf("error detail = %+v", unmapped)
	}
	if next != "status" {
		t.Errorf("cursor moved to %q on error", next)
	}
	if p != before {
		t.Errorf("profile changed on error: %+v", p)
	}
}

func TestAdvanceInputParsesAndScreens(t *testing.T) {
	sc := testScript(t)

	p := profile.Default()
	next, err := Advance(sc, "years", &p, "  3 ")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next != DoneID {
		t.Errorf("next = %q, want done", next)
	}
	if p.CanadianWorkYears != 3 {
		t.Errorf("years = %d, want 3", p.CanadianWorkYears)
	}

	bad := []struct {
		name, answer string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"letters", "three"},
		{"negative", "-1"},
		{"above max", "61"},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			p := profile.Default()
			before := p
			next, err := Advance(sc, "years", &p, tc.answer)
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v, want MalformedInputError", err)
			}
			if next != "years" || p != before {
				t.Errorf("state changed on malformed input %q", tc.answer)
			}
		})
	}
}

func TestAdvanceInvalidCursor(t *testing.T) {
	sc := testScript(t)
	p := profile.Default()

	for _, cursor := range []StepID{"nope", DoneID, ""} {
		_, err := Advance(sc, cursor, &p, "x")
		var invalid *InvalidCursorError
		if !errors.As(err, &invalid) {
			t.Errorf("cursor %q: err = %v, want InvalidCursorError", cursor, err)
		}
	}
}

func TestSessionFullRun(t *testing.T) {
	s := NewSession(testScript(t))

	if s.Cursor() != "start" {
		t.Fatalf("entry cursor = %q", s.Cursor())
	}
	if s.Done() {
		t.Fatal("fresh session reports done")
	}

	steps := []string{"", profile.TokenMarried, profile.TokenYes, "2"}
	for _, answer := range steps {
		if err := s.Advance(answer); err != nil {
			t.Fatalf("Advance(%q): %v", answer, err)
		}
	}
	if !s.Done() {
		t.Fatalf("session not done, cursor = %q", s.Cursor())
	}
	got := s.Profile()
	if got.MaritalStatus != profile.Married || !got.PartnerAccompanying || got.CanadianWorkYears != 2 {
		t.Errorf("profile = %+v", got)
	}

	if _, err := s.Current(); err == nil {
		t.Error("Current on a done session should fail")
	}
}

func TestSessionErrorKeepsState(t *testing.T) {
	s := NewSession(testScript(t))
	if err := s.Advance(""); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance("widowed"); err == nil {
		t.Fatal("expected an unmapped-option error")
	}
	if s.Cursor() != "status" {
		t.Errorf("cursor = %q after failed answer, want status", s.Cursor())
	}
	// The step can be answered again.
	if err := s.Advance(profile.TokenSingle); err != nil {
		t.Fatalf("re-answer: %v", err)
	}
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(testScript(t))
	for _, a := range []string{"", profile.TokenSingle, "4"} {
		if err := s.Advance(a); err != nil {
			t.Fatal(err)
		}
	}
	if !s.Done() {
		t.Fatalf("expected done, cursor = %q", s.Cursor())
	}

	s.Restart()
	if s.Cursor() != "start" || s.Done() {
		t.Errorf("cursor after restart = %q", s.Cursor())
	}
	if s.Profile() != profile.Default() {
		t.Errorf("profile after restart = %+v", s.Profile())
	}

	// Restarting twice is the same as restarting once.
	s.Restart()
	if s.Cursor() != "start" || s.Profile() != profile.Default() {
		t.Error("second restart changed state")
	}
}

func TestSessionProfileIsACopy(t *testing.T) {
	s := NewSession(testScript(t))
	p := s.Profile()
	p.Age = 99
	if s.Profile().Age == 99 {
		t.Error("mutating the returned profile leaked into the session")
	}
}
