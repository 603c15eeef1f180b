package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maplecheck/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ██████╗ ██╗     ███████╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ████╗ ████║██╔══██╗██╔══██╗██║     ██╔════╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 ██╔████╔██║███████║██████╔╝██║     █████╗  ██║     ███████║█████╗  ██║     █████╔╝
 ██║╚██╔╝██║██╔══██║██╔═══╝ ██║     ██╔══╝  ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██║ ╚═╝ ██║██║  ██║██║     ███████╗███████╗╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝     ╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "M A P L E C H E C K"

// RenderBanner returns the MAPLECHECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 88 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 88 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
