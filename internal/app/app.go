package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/screens/home"
	"github.com/abhisek/maplecheck/internal/screens/welcome"
	"github.com/abhisek/maplecheck/internal/ui/layout"
)

// Options carries the wired services for a TUI run.
type Options struct {
	// AdviceService generates improvement plans; nil disables them.
	AdviceService *advice.Service
	// History is the draw set used for score comparison.
	History []draws.Draw
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.AdviceService, opts.History)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The splash screen draws the full frame itself.
	if _, isSplash := active.(*welcome.WelcomeScreen); isSplash {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	score := -1
	if sp, ok := active.(screen.ScoreProvider); ok {
		score = sp.Score()
	}

	header := layout.RenderHeader(title, score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
