package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 {
		return "loading…"
	}

	body := m.viewport.View()
	if m.helpVisible {
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	}
	return strings.Join([]string{m.nav.text, body, m.renderFooter()}, "\n")
}

func (m Model) renderHelp() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.rnd.theme.accent()).
		Padding(0, 1)
	h := m.help
	h.ShowAll = true
	h.Width = max(m.width-4, 1)
	return border.Render("Keys\n\n" + h.View(m.keys))
}

// renderFooter pins the status message, or short help and scroll position, to the last line.
func (m Model) renderFooter() string {
	st := lipgloss.NewStyle().Foreground(m.rnd.theme.muted()).MaxWidth(m.width)
	if m.status != "" {
		return st.Render(m.status)
	}
	left := m.help.ShortHelpView(m.keys.ShortHelp())
	right := fmt.Sprintf("%s · %3.0f%%", m.state.Device, m.viewport.ScrollPercent()*100)
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return st.Render(right)
	}
	return st.Render(left + strings.Repeat(" ", pad) + right)
}
