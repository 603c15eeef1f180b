package components

import (
	"github.com/abhisek/maplecheck/internal/ui/theme"
)

// Button renders a labeled action marker. Activation is handled by the
// owning screen; the component only knows how to draw itself.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button in its active or inactive style.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
