package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screens/drawhistory"
	"github.com/abhisek/maplecheck/internal/screens/interview"
)

func TestStartAssessmentPushesInterview(t *testing.T) {
	h := New(nil, draws.Seed())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*interview.InterviewScreen); !ok {
		t.Errorf("expected interview screen, got %T", msg.Screen)
	}
}

func TestDrawHistoryMenuItem(t *testing.T) {
	h := New(nil, draws.Seed())

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*drawhistory.DrawHistoryScreen); !ok {
		t.Errorf("expected draw history screen, got %T", msg.Screen)
	}
}

func TestViewRendersBothModes(t *testing.T) {
	h := New(nil, draws.Seed())

	if h.View(120, 40) == "" {
		t.Fatal("expected non-empty full view")
	}
	if h.View(84, 18) == "" {
		t.Fatal("expected non-empty compact view")
	}
}

func TestKeyHints(t *testing.T) {
	h := New(nil, draws.Seed())
	if len(h.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(h.KeyHints()))
	}
}
