package cmd

import (
	"testing"

	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/scoring"
)

func TestNormalizeProfileClampsBenchmarks(t *testing.T) {
	p := profile.Default()
	p.Age = 29
	p.Education = profile.EduBachelorOrThreeYear
	p.Primary = profile.LanguageSkills{Speaking: 50, Listening: 9, Reading: 9, Writing: 9}
	p.Secondary = profile.LanguageSkills{Speaking: -3}
	p.CanadianWorkYears = 3

	if err := normalizeProfile(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Primary.Speaking != profile.MaxCLB {
		t.Errorf("Primary.Speaking = %d, want %d", p.Primary.Speaking, profile.MaxCLB)
	}
	if p.Secondary.Speaking != 0 {
		t.Errorf("Secondary.Speaking = %d, want 0", p.Secondary.Speaking)
	}

	// A benchmark above the scale scores exactly like one at the top of it.
	capped := p
	capped.Primary.Speaking = profile.MaxCLB
	if got, want := scoring.Score(p).Total, scoring.Score(capped).Total; got != want {
		t.Errorf("Total = %d, want %d", got, want)
	}
}

func TestNormalizeProfileClampsWorkYears(t *testing.T) {
	p := profile.Default()
	p.CanadianWorkYears = 12
	p.ForeignWorkYears = -1
	p.Partner.CanadianWorkYears = 9

	if err := normalizeProfile(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.CanadianWorkYears != profile.WorkYearsCap {
		t.Errorf("CanadianWorkYears = %d, want %d", p.CanadianWorkYears, profile.WorkYearsCap)
	}
	if p.ForeignWorkYears != 0 {
		t.Errorf("ForeignWorkYears = %d, want 0", p.ForeignWorkYears)
	}
	if p.Partner.CanadianWorkYears != profile.WorkYearsCap {
		t.Errorf("Partner.CanadianWorkYears = %d, want %d", p.Partner.CanadianWorkYears, profile.WorkYearsCap)
	}
}

func TestNormalizeProfileRejectsNegativeAge(t *testing.T) {
	p := profile.Default()
	p.Age = -5

	if err := normalizeProfile(&p); err == nil {
		t.Fatal("expected error for negative age")
	}
}
