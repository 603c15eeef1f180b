package drawhistory

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
)

func testDraws() []draws.Draw {
	return []draws.Draw{
		{Stream: draws.StreamGeneral, Label: "Round 341", Cutoff: 529, Date: "2026-07-02"},
		{Stream: draws.StreamCEC, Label: "Round 340", Cutoff: 521, Date: "2026-06-18"},
		{Stream: draws.StreamPNP, Label: "Round 339", Cutoff: 739, Date: "2026-06-04"},
	}
}

func TestViewListsRounds(t *testing.T) {
	d := New(testDraws())
	view := d.View(120, 40)

	for _, want := range []string{"Round 341", "529", "739"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEmptyHistory(t *testing.T) {
	d := New(nil)
	if !strings.Contains(d.View(120, 40), "No draw history") {
		t.Error("empty history should say so")
	}
}

func TestEscPops(t *testing.T) {
	d := New(testDraws())
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestScrollBounds(t *testing.T) {
	d := New(testDraws())

	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if d.offset != 0 {
		t.Errorf("offset = %d, want 0 at top", d.offset)
	}

	for i := 0; i < 10; i++ {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if d.offset != len(testDraws())-1 {
		t.Errorf("offset = %d, want %d at bottom", d.offset, len(testDraws())-1)
	}
}
