// Package home is the main menu screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/router"
	"github.com/abhisek/maplecheck/internal/screen"
	"github.com/abhisek/maplecheck/internal/screens/drawhistory"
	"github.com/abhisek/maplecheck/internal/screens/interview"
	"github.com/abhisek/maplecheck/internal/ui/components"
	"github.com/abhisek/maplecheck/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	adviceSvc  *advice.Service
	history    []draws.Draw
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. adviceSvc may be nil, in which case the
// assessment runs without the improvement plan.
func New(adviceSvc *advice.Service, history []draws.Draw) *HomeScreen {
	menuLabels := []string{"START ASSESSMENT", "DRAW HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: interview.New(adviceSvc, history)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drawhistory.New(history)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		adviceSvc:  adviceSvc,
		history:    history,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderLeaf(cw))
	}

	sections = append(sections, renderStatsBar(len(h.history), cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.adviceSvc == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
