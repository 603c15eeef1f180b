package script

import (
	"testing"

	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/scoring"
)

// answer drives the session one step, failing the test on any error.
func answer(t *testing.T, s *Session, want StepID, value string) {
	t.Helper()
	if s.Cursor() != want {
		t.Fatalf("cursor = %q, want %q", s.Cursor(), want)
	}
	if err := s.Advance(value); err != nil {
		t.Fatalf("Advance(%q) at %q: %v", value, want, err)
	}
}

func TestInterviewSingleApplicantPath(t *testing.T) {
	s := NewSession(Interview())

	answer(t, s, "intro", "")
	answer(t, s, "marital", profile.TokenSingle)
	// Single skips every partner step.
	answer(t, s, "age", "29")
	answer(t, s, "education", profile.EduBachelorOrThreeYear.Token())
	answer(t, s, "canadian-study", profile.TokenCredNone)
	answer(t, s, "first-language", profile.TokenEnglish)
	answer(t, s, "primary-fluency", "fluent")
	answer(t, s, "secondary-fluency", "none")
	answer(t, s, "work-in", "3")
	answer(t, s, "work-out", "0")
	answer(t, s, "trade-cert", profile.TokenNo)
	answer(t, s, "nomination", profile.TokenNo)
	answer(t, s, "sibling", profile.TokenNo)
	answer(t, s, "category", string(profile.CategoryGeneral))
	answer(t, s, "wrapup", "")

	if !s.Done() {
		t.Fatalf("interview not done, cursor = %q", s.Cursor())
	}

	p := s.Profile()
	if p.Age != 29 || p.Education != profile.EduBachelorOrThreeYear || p.CanadianWorkYears != 3 {
		t.Errorf("profile = %+v", p)
	}
	if !p.Primary.AllAtLeast(9) {
		t.Errorf("fluent should map to uniform CLB 9, got %+v", p.Primary)
	}

	// The whole pipeline: this walkthrough is the 455-point reference case.
	if got := scoring.Score(p).Total; got != 455 {
		t.Errorf("total = %d, want 455", got)
	}
}

func TestInterviewPartnerPath(t *testing.T) {
	s := NewSession(Interview())

	answer(t, s, "intro", "")
	answer(t, s, "marital", profile.TokenMarried)
	answer(t, s, "partner-accompanying", profile.TokenYes)
	answer(t, s, "partner-citizen", profile.TokenNo)
	answer(t, s, "partner-education", profile.EduMastersOrProfessional.Token())
	answer(t, s, "partner-fluency", "fluent")
	answer(t, s, "partner-work", "5")

	if s.Cursor() != "age" {
		t.Fatalf("cursor after partner steps = %q, want age", s.Cursor())
	}

	p := s.Profile()
	if !scoring.PartnerFactorsActive(p) {
		t.Error("partner-factors gate should be active")
	}
	if p.Partner.Education != profile.EduMastersOrProfessional {
		t.Errorf("partner education = %v", p.Partner.Education)
	}
	if !p.Partner.Language.AllAtLeast(9) {
		t.Errorf("partner language = %+v", p.Partner.Language)
	}
	if p.Partner.CanadianWorkYears != 5 {
		t.Errorf("partner work = %d", p.Partner.CanadianWorkYears)
	}
}

func TestInterviewPartnerShortcuts(t *testing.T) {
	// Partner staying behind jumps straight to age.
	s := NewSession(Interview())
	answer(t, s, "intro", "")
	answer(t, s, "marital", profile.TokenCommonLaw)
	answer(t, s, "partner-accompanying", profile.TokenNo)
	if s.Cursor() != "age" {
		t.Errorf("cursor = %q, want age", s.Cursor())
	}

	// A partner who is already a citizen skips the credential questions.
	s = NewSession(Interview())
	answer(t, s, "intro", "")
	answer(t, s, "marital", profile.TokenMarried)
	answer(t, s, "partner-accompanying", profile.TokenYes)
	answer(t, s, "partner-citizen", profile.TokenYes)
	if s.Cursor() != "age" {
		t.Errorf("cursor = %q, want age", s.Cursor())
	}
	if scoring.PartnerFactorsActive(s.Profile()) {
		t.Error("citizen partner must not activate partner factors")
	}
}

func TestInterviewSecondaryFluencyMapping(t *testing.T) {
	tests := []struct {
		value string
		want  profile.LanguageSkills
	}{
		{"strong", uniformSkills(8)},
		{"moderate", uniformSkills(5)},
		{"basic", uniformSkills(4)},
		{"none", uniformSkills(0)},
	}
	for _, tc := range tests {
		var p profile.Profile
		setSecondaryFluency(&p, tc.value)
		if p.Secondary != tc.want {
			t.Errorf("secondary %q = %+v, want %+v", tc.value, p.Secondary, tc.want)
		}
	}
}

func TestInterviewEveryStepReachable(t *testing.T) {
	// MustNew already enforces this at init; the test pins the step count so
	// an accidentally orphaned question shows up in review.
	if got := Interview().Len(); got != 20 {
		t.Errorf("interview has %d steps, want 20", got)
	}
}

func TestInterviewChoiceStepsAnswerable(t *testing.T) {
	// Every option token of every choice step must be accepted by the
	// interpreter without error from that step.
	for _, step := range Interview().Steps() {
		if step.Kind != KindChoice {
			continue
		}
		for _, opt := range step.Options {
			p := profile.Default()
			next, err := Advance(Interview(), step.ID, &p, opt.Value)
			if err != nil {
				t.Errorf("step %q option %q: %v", step.ID, opt.Value, err)
			}
			if next == step.ID {
				t.Errorf("step %q option %q did not advance", step.ID, opt.Value)
			}
		}
	}
}
