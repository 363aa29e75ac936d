package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/portfolio/internal/portfolio"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		cmd := m.dispatch(portfolio.ResizeMsg{
			Width:  float64(x.Width) * m.cellW,
			Height: float64(x.Height) * m.cellH,
		})
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(x)

	case tea.KeyMsg:
		return m, m.handleKey(x)

	case scrollFrameMsg:
		if m.stepScroll(x) {
			return m, scrollFrame(x.id)
		}
		return m, nil

	case submissionDoneMsg:
		entry := logrus.WithField("endpoint", m.content.Endpoint)
		if x.err != nil {
			entry.WithError(x.err).Debug("contact submission failed")
		} else {
			entry.Debug("contact submission sent")
		}
		return m, m.dispatch(portfolio.SubmissionResultMsg{Err: x.err})

	case statusMsg:
		return m, m.setStatus(x.text)

	case clearStatusMsg:
		if x.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(x tea.MouseMsg) tea.Cmd {
	if m.helpVisible {
		return nil
	}
	if tea.MouseEvent(x).IsWheel() {
		m.cancelScroll()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(x)
		return tea.Batch(cmd, m.dispatch(m.pointerAt(m.hit(x.X, x.Y))...))
	}

	id := m.hit(x.X, x.Y)
	msgs := m.pointerAt(id)
	target := portfolio.ParseID(id)
	var extra tea.Cmd

	switch x.Action {
	case tea.MouseActionMotion:
	case tea.MouseActionPress:
		if x.Button != tea.MouseButtonLeft {
			break
		}
		m.pressID = id
		if target.Kind == portfolio.TargetSubmit {
			msgs = append(msgs, portfolio.SubmitPressMsg{})
		}
	case tea.MouseActionRelease:
		pressed := m.pressID
		m.pressID = ""
		if target.Kind == portfolio.TargetSubmit {
			msgs = append(msgs, portfolio.SubmitReleaseMsg{})
			break
		}
		if id == "" || id != pressed {
			break
		}
		switch target.Kind {
		case portfolio.TargetTab:
			msgs = append(msgs, portfolio.NavigateMsg{Tab: target.Tab})
		case portfolio.TargetTile:
			msgs = append(msgs, portfolio.ClickProjectMsg{Project: target.Project})
		case portfolio.TargetLink:
			if n, ok := m.tree.Find(id); ok && n.URL != "" {
				extra = openCmd(m.openURL, n.URL)
			}
		case portfolio.TargetField:
			extra = m.setFocus(id)
		case portfolio.TargetNone, portfolio.TargetSubmit:
		}
	}
	return tea.Batch(m.dispatch(msgs...), extra)
}

func (m *Model) handleKey(x tea.KeyMsg) tea.Cmd {
	if key.Matches(x, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	switch {
	case key.Matches(x, m.keys.Next):
		return m.cycleFocus(1)
	case key.Matches(x, m.keys.Prev):
		return m.cycleFocus(-1)
	case m.focus != "" && key.Matches(x, m.keys.Blur):
		m.blur()
		m.refresh()
		return nil
	}

	if m.focusedField() {
		return m.editField(x)
	}
	if m.focus == portfolio.SubmitID && key.Matches(x, m.keys.Submit) {
		return m.dispatch(portfolio.SubmitPressMsg{}, portfolio.SubmitReleaseMsg{})
	}

	switch {
	case key.Matches(x, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(x, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.refresh()
		return nil
	case key.Matches(x, m.keys.Portfolio):
		return m.dispatch(portfolio.NavigateMsg{Tab: portfolio.Portfolio})
	case key.Matches(x, m.keys.About):
		return m.dispatch(portfolio.NavigateMsg{Tab: portfolio.About})
	case key.Matches(x, m.keys.Contact):
		return m.dispatch(portfolio.NavigateMsg{Tab: portfolio.Contact})
	case key.Matches(x, m.keys.Copy):
		return m.copyHovered()
	case key.Matches(x, m.keys.Open):
		p, ok := m.hoveredProject()
		if !ok {
			return m.setStatus("hover a project first")
		}
		return m.dispatch(portfolio.ClickProjectMsg{Project: p})
	}

	m.cancelScroll()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(x)
	return cmd
}

// editField forwards a key to the focused component and reports value changes.
func (m *Model) editField(x tea.KeyMsg) tea.Cmd {
	f := portfolio.ParseID(m.focus).Field
	before := m.fieldValue(f)
	var cmd tea.Cmd
	if f == portfolio.EmailMessage {
		m.message, cmd = m.message.Update(x)
	} else {
		*m.fields[f], cmd = m.fields[f].Update(x)
	}
	if after := m.fieldValue(f); after != before {
		return tea.Batch(cmd, m.dispatch(portfolio.UpdateFieldMsg{Field: f, Value: after}))
	}
	m.refresh()
	return cmd
}

func (m Model) hoveredProject() (portfolio.Project, bool) {
	t := portfolio.ParseID(m.hoverID)
	if t.Kind != portfolio.TargetTile || m.state.HoveredProject == portfolio.NoProject {
		return portfolio.NoProject, false
	}
	return t.Project, true
}

func (m *Model) copyHovered() tea.Cmd {
	p, ok := m.hoveredProject()
	if !ok {
		return m.setStatus("hover a project first")
	}
	url, ok := m.reducer.Link(p)
	if !ok {
		return m.setStatus(p.String() + " has no link")
	}
	if err := m.copyText(url); err != nil {
		logrus.WithError(err).Debug("clipboard write failed")
		return m.setStatus("clipboard unavailable")
	}
	return m.setStatus("copied " + url)
}

// setStatus shows text in the footer until statusTTL passes.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	id := m.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}
