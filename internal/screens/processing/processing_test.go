package processing

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screens/results"
	"github.com/abhisek/maplecheck/internal/scoring"
)

func testProfile() profile.Profile {
	p := profile.Default()
	p.Age = 29
	p.Education = profile.EduBachelorOrThreeYear
	p.Primary = profile.LanguageSkills{Speaking: 9, Listening: 9, Reading: 9, Writing: 9}
	p.CanadianWorkYears = 3
	return p
}

func TestInitScoresProfile(t *testing.T) {
	p := New(testProfile(), nil, draws.Seed(), nil)

	if cmd := p.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}

	want := scoring.Score(testProfile()).Total
	if p.breakdown.Total != want {
		t.Errorf("breakdown.Total = %d, want %d", p.breakdown.Total, want)
	}
	if len(p.comparison.Eligible) == 0 {
		t.Error("expected at least the always-open general stream")
	}
}

func TestTicksEndInResultsScreen(t *testing.T) {
	p := New(testProfile(), nil, draws.Seed(), nil)
	p.Init()

	var last tea.Cmd
	for i := 0; i < 50 && !p.done; i++ {
		_, last = p.Update(tickMsg(time.Now()))
	}

	if !p.done {
		t.Fatal("processing never finished")
	}
	if last == nil {
		t.Fatal("expected a final command")
	}

	msg, ok := last().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", last())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
}

func TestViewShowsPhase(t *testing.T) {
	p := New(testProfile(), nil, draws.Seed(), nil)
	p.Init()
	if p.View(100, 30) == "" {
		t.Fatal("expected non-empty view")
	}
}
