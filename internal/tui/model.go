package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/portfolio/internal/api"
	"github.com/ensigniasec/portfolio/internal/portfolio"
	"github.com/ensigniasec/portfolio/internal/site"
)

// Options configures the TUI host.
type Options struct {
	Content site.Content
	// Submitter receives contact submissions. A nil Submitter logs and drops them.
	Submitter     api.ContactSubmitter
	CellWidth     float64
	CellHeight    float64
	SubmitTimeout time.Duration
	// Dark selects the dark-background theme.
	Dark bool
	// LogFile receives logs while the program runs. Empty discards them.
	LogFile string
}

// scrollAnim is the running scroll animation. A new one replaces the old by bumping id.
type scrollAnim struct {
	id       int
	from     int
	to       int
	began    time.Time
	duration time.Duration
	easing   portfolio.Easing
	running  bool
}

// Model is the root Bubble Tea model. It hosts portfolio.State and turns reducer effects into commands.
type Model struct {
	ctx       context.Context //nolint:containedctx // bounds submissions to the program lifetime
	reducer   portfolio.Reducer
	content   site.Content
	state     portfolio.State
	submitter api.ContactSubmitter
	timeout   time.Duration

	openURL  func(string) error
	copyText func(string) error
	now      func() time.Time

	cellW, cellH  float64
	width, height int

	fields   map[portfolio.Field]*textinput.Model
	message  textarea.Model
	focus    string
	viewport viewport.Model
	rnd      *renderer
	tree     portfolio.Node
	nav      block
	body     block

	hoverID string
	pressID string

	anim scrollAnim

	status   string
	statusID int

	helpVisible bool
	help        help.Model
	keys        keyMap
	quitting    bool
}

// NewModel constructs a Model with initial state for an unknown window size.
func NewModel(ctx context.Context, opts Options) Model {
	cellW, cellH := opts.CellWidth, opts.CellHeight
	if cellW <= 0 {
		cellW = defaultCellWidth
	}
	if cellH <= 0 {
		cellH = defaultCellHeight
	}
	timeout := opts.SubmitTimeout
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	th := theme{palette: opts.Content.Palette, dark: opts.Dark}

	fields := make(map[portfolio.Field]*textinput.Model, 3)
	placeholders := map[portfolio.Field]string{
		portfolio.FirstName:    "First name",
		portfolio.LastName:     "Last name",
		portfolio.EmailAddress: "Email address",
	}
	for f, ph := range placeholders {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = ph
		ti.CharLimit = maxFieldLength
		ti.PlaceholderStyle = ti.PlaceholderStyle.Foreground(th.muted())
		fields[f] = &ti
	}
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = "Message"
	ta.ShowLineNumbers = false
	ta.CharLimit = maxMessageLength
	ta.SetHeight(messageRows)

	return Model{
		ctx:       ctx,
		reducer:   portfolio.NewReducer(opts.Content),
		content:   opts.Content,
		state:     portfolio.New(0, 0),
		submitter: opts.Submitter,
		timeout:   timeout,
		openURL:   openBrowser,
		copyText:  clipboard.WriteAll,
		now:       time.Now,
		cellW:     cellW,
		cellH:     cellH,
		fields:    fields,
		message:   ta,
		viewport:  viewport.New(0, 0),
		rnd: &renderer{
			cellW: cellW,
			cellH: cellH,
			theme: th,
			md:    newMarkdownCache(th.markdownStyle()),
		},
		help: help.New(),
		keys: newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.content.Name)
}

// State returns the hosted UI state.
func (m Model) State() portfolio.State { return m.state }

// dispatch reduces msgs in order, syncs the form components and re-renders.
func (m *Model) dispatch(msgs ...portfolio.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		var fx []portfolio.Effect
		m.state, fx = m.reducer.Update(m.state, msg)
		for _, e := range fx {
			cmds = append(cmds, m.runEffect(e))
		}
	}
	m.syncFields()
	if m.state.Submit == portfolio.Submitted && m.focusedField() {
		m.blur()
	}
	m.refresh()
	return tea.Batch(cmds...)
}

// syncFields copies form values from state into the components that disagree.
func (m *Model) syncFields() {
	for f, ti := range m.fields {
		if v := m.state.Form.Get(f); ti.Value() != v {
			ti.SetValue(v)
		}
	}
	if v := m.state.Form.Get(portfolio.EmailMessage); m.message.Value() != v {
		m.message.SetValue(v)
	}
}

func (m Model) fieldValue(f portfolio.Field) string {
	if f == portfolio.EmailMessage {
		return m.message.Value()
	}
	return m.fields[f].Value()
}

// refresh renders the tree and lays it out for the current window.
func (m *Model) refresh() {
	if m.width <= 0 {
		return
	}
	m.tree = portfolio.Render(m.state, m.content)
	m.sizeFields()
	m.rnd.focus = m.focus
	m.rnd.inputs = m.fieldViews()
	m.nav, m.body = m.rnd.page(m.tree, m.width)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.nav.height()-footerLines, 1)
	m.viewport.SetContent(m.body.text)
}

// sizeFields fits each component to the width its node asks for.
func (m *Model) sizeFields() {
	m.tree.Walk(func(n portfolio.Node) {
		t := portfolio.ParseID(n.ID)
		if n.Kind != portfolio.KindInput || t.Kind != portfolio.TargetField {
			return
		}
		w := min(max(m.rnd.cols(n.Style.WidthPx), inputChrome+1), m.width) - inputChrome
		if t.Field == portfolio.EmailMessage {
			m.message.SetWidth(w)
			return
		}
		m.fields[t.Field].Width = max(w-1, 1)
	})
}

func (m Model) fieldViews() map[string]string {
	views := make(map[string]string, len(m.fields)+1)
	for f, ti := range m.fields {
		views[portfolio.FieldID(f)] = ti.View()
	}
	views[portfolio.FieldID(portfolio.EmailMessage)] = m.message.View()
	return views
}

// focusRing lists keyboard focus targets in page order.
func (m Model) focusRing() []string {
	if m.state.Submit == portfolio.Submitted {
		return []string{portfolio.SubmitID}
	}
	ring := make([]string, 0, len(portfolio.Fields())+1)
	for _, f := range portfolio.Fields() {
		ring = append(ring, portfolio.FieldID(f))
	}
	return append(ring, portfolio.SubmitID)
}

func (m Model) focusedField() bool {
	return portfolio.ParseID(m.focus).Kind == portfolio.TargetField
}

// setFocus moves keyboard focus to id and scrolls it into view.
func (m *Model) setFocus(id string) tea.Cmd {
	m.blur()
	m.focus = id
	var cmd tea.Cmd
	if t := portfolio.ParseID(id); t.Kind == portfolio.TargetField {
		if t.Field == portfolio.EmailMessage {
			cmd = m.message.Focus()
		} else {
			cmd = m.fields[t.Field].Focus()
		}
	}
	m.refresh()
	m.ensureVisible(id)
	return cmd
}

func (m *Model) blur() {
	for _, ti := range m.fields {
		ti.Blur()
	}
	m.message.Blur()
	m.focus = ""
}

// cycleFocus moves focus by delta around the ring.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	ring := m.focusRing()
	idx := -1
	for i, id := range ring {
		if id == m.focus {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(ring) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(ring)) % len(ring)
	}
	return m.setFocus(ring[idx])
}

// ensureVisible scrolls the body so the region with id is on screen.
func (m *Model) ensureVisible(id string) {
	for _, r := range m.body.regions {
		if r.id != id {
			continue
		}
		top, bottom := m.viewport.YOffset, m.viewport.YOffset+m.viewport.Height
		if r.y < top || r.y+r.h > bottom {
			m.cancelScroll()
			m.viewport.SetYOffset(r.y)
		}
		return
	}
}

// hit returns the id of the target under the cell (x, y) of the window.
func (m Model) hit(x, y int) string {
	navH := m.nav.height()
	if y < navH {
		return hitTest(m.nav.regions, x, y)
	}
	by := y - navH
	if by >= m.viewport.Height {
		return ""
	}
	return hitTest(m.body.regions, x, by+m.viewport.YOffset)
}

// pointerAt turns a pointer move onto id into leave and hover messages.
func (m *Model) pointerAt(id string) []portfolio.Msg {
	if id == m.hoverID {
		return nil
	}
	var msgs []portfolio.Msg
	switch old := portfolio.ParseID(m.hoverID); old.Kind {
	case portfolio.TargetTab:
		msgs = append(msgs, portfolio.LeaveNavMsg{})
	case portfolio.TargetTile:
		msgs = append(msgs, portfolio.LeaveProjectMsg{})
	case portfolio.TargetSubmit:
		msgs = append(msgs, portfolio.SubmitLeaveMsg{})
	case portfolio.TargetNone, portfolio.TargetField, portfolio.TargetLink:
	}
	switch t := portfolio.ParseID(id); t.Kind {
	case portfolio.TargetTab:
		msgs = append(msgs, portfolio.HoverNavMsg{Tab: t.Tab})
	case portfolio.TargetTile:
		msgs = append(msgs, portfolio.HoverProjectMsg{Project: t.Project})
	case portfolio.TargetSubmit:
		msgs = append(msgs, portfolio.SubmitHoverMsg{})
	case portfolio.TargetNone, portfolio.TargetField, portfolio.TargetLink:
	}
	m.hoverID = id
	return msgs
}
