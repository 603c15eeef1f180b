package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for the interview's answer line.
// The numeric variant drops any non-digit keystroke before it reaches
// the model, so the value is always parseable as an unsigned integer.
type TextInput struct {
	Model   textinput.Model
	numeric bool
}

// NewTextInput creates a focused input. limit caps the number of
// characters (interview answers are at most a few digits).
func NewTextInput(placeholder string, numeric bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{Model: ti, numeric: numeric}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update filters keystrokes and forwards the rest to the model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.numeric {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input line.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}
