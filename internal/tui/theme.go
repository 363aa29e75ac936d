package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/portfolio/internal/site"
)

// theme resolves palette colors for the terminal background.
type theme struct {
	palette site.Palette
	dark    bool
}

// color maps a palette color to a lipgloss color. On dark terminals the page
// background and text swap so body copy stays readable.
func (t theme) color(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	if t.dark {
		switch c {
		case t.palette.Text:
			return lipgloss.Color(t.palette.Background)
		case t.palette.Background:
			return lipgloss.Color(t.palette.Text)
		}
	}
	return lipgloss.Color(c)
}

func (t theme) muted() lipgloss.TerminalColor { return lipgloss.Color(t.palette.Muted) }

func (t theme) accent() lipgloss.TerminalColor { return lipgloss.Color(t.palette.Accent) }

func (t theme) markdownStyle() string {
	if t.dark {
		return "dark"
	}
	return "light"
}
