package script

import (
	"strings"
	"testing"

	"github.com/abhisek/maplecheck/internal/profile"
)

func choiceStep(id StepID) Step {
	return Step{
		ID:     id,
		Kind:   KindChoice,
		Prompt: "pick",
		Field:  profile.FieldMaritalStatus,
		Options: []Option{
			{Label: "Single", Value: profile.TokenSingle},
			{Label: "Married", Value: profile.TokenMarried},
		},
	}
}

func TestNewRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Step
		wantErr string
	}{
		{
			name:    "empty script",
			steps:   nil,
			wantErr: "no steps",
		},
		{
			name: "reserved terminal id",
			steps: []Step{
				{ID: DoneID, Kind: KindStatement, Prompt: "x"},
			},
			wantErr: "reserved",
		},
		{
			name: "duplicate id",
			steps: []Step{
				choiceStep("a"),
				choiceStep("a"),
			},
			wantErr: "duplicate",
		},
		{
			name: "empty prompt",
			steps: []Step{
				{ID: "a", Kind: KindStatement},
			},
			wantErr: "prompt",
		},
		{
			name: "dangling next",
			steps: []Step{
				{ID: "a", Kind: KindStatement, Prompt: "x", Next: "ghost"},
			},
			wantErr: "ghost",
		},
		{
			name: "dangling option dest",
			steps: []Step{
				{
					ID:     "a",
					Kind:   KindChoice,
					Prompt: "pick",
					Field:  profile.FieldMaritalStatus,
					Options: []Option{
						{Label: "Single", Value: profile.TokenSingle, Dest: "ghost"},
					},
				},
			},
			wantErr: "ghost",
		},
		{
			name: "choice without options",
			steps: []Step{
				{ID: "a", Kind: KindChoice, Prompt: "pick", Field: profile.FieldMaritalStatus},
			},
			wantErr: "option",
		},
		{
			name: "choice without a profile effect",
			steps: []Step{
				{
					ID:     "a",
					Kind:   KindChoice,
					Prompt: "pick",
					Options: []Option{
						{Label: "Yes", Value: profile.TokenYes},
					},
				},
			},
			wantErr: "write",
		},
		{
			name: "choice with duplicate option values",
			steps: []Step{
				{
					ID:     "a",
					Kind:   KindChoice,
					Prompt: "pick",
					Field:  profile.FieldMaritalStatus,
					Options: []Option{
						{Label: "One", Value: profile.TokenSingle},
						{Label: "Two", Value: profile.TokenSingle},
					},
				},
			},
			wantErr: "duplicate",
		},
		{
			name: "statement with options",
			steps: []Step{
				{
					ID:      "a",
					Kind:    KindStatement,
					Prompt:  "x",
					Options: []Option{{Label: "Yes", Value: profile.TokenYes}},
				},
			},
			wantErr: "option",
		},
		{
			name: "input with inverted range",
			steps: []Step{
				{
					ID:     "a",
					Kind:   KindInput,
					Prompt: "n?",
					Field:  profile.FieldAge,
					Min:    10,
					Max:    5,
				},
			},
			wantErr: "below min",
		},
		{
			name: "field and mutation on the same step",
			steps: []Step{
				{
					ID:     "a",
					Kind:   KindChoice,
					Prompt: "pick",
					Field:  profile.FieldMaritalStatus,
					Mutate: func(p *profile.Profile, v string) {},
					Options: []Option{
						{Label: "Single", Value: profile.TokenSingle},
					},
				},
			},
			wantErr: "both",
		},
		{
			name: "unreachable step",
			steps: []Step{
				{ID: "a", Kind: KindStatement, Prompt: "x", Next: DoneID},
				{ID: "island", Kind: KindStatement, Prompt: "y", Next: DoneID},
			},
			wantErr: "unreachable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.steps)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewAcceptsValidScript(t *testing.T) {
	sc, err := New([]Step{
		{ID: "a", Kind: KindStatement, Prompt: "x"},
		choiceStep("b"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sc.Entry() != "a" {
		t.Errorf("entry = %q", sc.Entry())
	}
	if sc.Len() != 2 {
		t.Errorf("len = %d", sc.Len())
	}
}

func TestMustNewPanicsOnBadScript(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic")
		}
	}()
	MustNew(nil)
}

func TestStepsReturnsCopy(t *testing.T) {
	sc := MustNew([]Step{
		{ID: "a", Kind: KindStatement, Prompt: "x", Next: DoneID},
	})
	steps := sc.Steps()
	steps[0].Prompt = "tampered"
	fresh, err := sc.Step("a")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Prompt != "x" {
		t.Error("mutating Steps() result leaked into the script")
	}
}
