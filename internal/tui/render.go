package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/portfolio/internal/portfolio"
)

// block is a rendered node and the hit regions inside it, relative to its top-left cell.
type block struct {
	text    string
	regions []region
}

func (b block) width() int { return lipgloss.Width(b.text) }

func (b block) height() int {
	if b.text == "" {
		return 0
	}
	return lipgloss.Height(b.text)
}

// renderer turns a portfolio.Node tree into terminal text.
type renderer struct {
	cellW, cellH float64
	theme        theme
	// inputs holds the live component views keyed by field node id.
	inputs map[string]string
	focus  string
	md     *markdownCache
}

func (r *renderer) cols(px float64) int {
	if px <= 0 || math.IsNaN(px) {
		return 0
	}
	return int(math.Round(px / r.cellW))
}

func (r *renderer) rows(px float64) int {
	if px <= 0 || math.IsNaN(px) {
		return 0
	}
	return int(math.Round(px / r.cellH))
}

// page renders the root into its fixed navigation bar and scrolling body.
func (r *renderer) page(root portfolio.Node, width int) (nav, body block) {
	if len(root.Children) < 2 {
		return block{}, r.render(root, width)
	}
	return r.render(root.Children[0], width), r.render(root.Children[1], width)
}

func (r *renderer) render(n portfolio.Node, maxW int) block {
	if maxW < 1 {
		maxW = 1
	}
	var b block
	switch n.Kind {
	case portfolio.KindColumn:
		b = r.column(n, maxW)
	case portfolio.KindRow:
		b = r.row(n, maxW)
	case portfolio.KindText:
		b = r.text(n, maxW)
	case portfolio.KindMarkdown:
		b = block{text: r.md.render(n.Text, maxW)}
	case portfolio.KindTile:
		b = r.tile(n, maxW)
	case portfolio.KindButton:
		b = r.button(n, maxW)
	case portfolio.KindInput:
		b = r.input(n, maxW)
	case portfolio.KindLink:
		b = r.text(n, maxW)
	case portfolio.KindImage:
		b = r.image(n, maxW)
	}
	if n.ID != "" && b.text != "" {
		b.regions = append([]region{{id: n.ID, w: b.width(), h: b.height()}}, b.regions...)
	}
	return b
}

func (r *renderer) style(s portfolio.Style) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold).Underline(s.Underline)
	if s.Fg != "" {
		st = st.Foreground(r.theme.color(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(r.theme.color(s.Bg))
	}
	return st
}

func (r *renderer) column(n portfolio.Node, maxW int) block {
	padX := r.cols(n.Style.PadX)
	if 2*padX >= maxW {
		padX = 0
	}
	padY := min(r.rows(n.Style.PadY), maxPadRows)
	gap := min(r.rows(n.Style.GapPx), maxGapRows)
	inner := maxW - 2*padX

	var lines []string
	var regs []region
	for _, ch := range n.Children {
		cb := r.render(ch, inner)
		if cb.text == "" {
			continue
		}
		if len(lines) > 0 {
			for range gap {
				lines = append(lines, "")
			}
		}
		regs = append(regs, shift(cb.regions, 0, len(lines))...)
		lines = append(lines, strings.Split(cb.text, "\n")...)
	}
	for len(lines) < r.rows(n.Style.MinHeight)-2*padY {
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		return block{}
	}

	pad := strings.Repeat(" ", padX)
	out := make([]string, 0, len(lines)+2*padY)
	for range padY {
		out = append(out, "")
	}
	for _, l := range lines {
		out = append(out, pad+l)
	}
	for range padY {
		out = append(out, "")
	}
	return block{text: strings.Join(out, "\n"), regions: shift(regs, padX, padY)}
}

func (r *renderer) row(n portfolio.Node, maxW int) block {
	padX := r.cols(n.Style.PadX)
	if 2*padX >= maxW {
		padX = 0
	}
	padY := min(r.rows(n.Style.PadY), maxPadRows)
	gap := r.cols(n.Style.GapPx)
	remaining := maxW - 2*padX

	var parts []string
	var regs []region
	x := 0
	for _, ch := range n.Children {
		if len(parts) > 0 {
			if remaining-gap < 1 {
				break
			}
			parts = append(parts, strings.Repeat(" ", gap))
			x += gap
			remaining -= gap
		}
		cb := r.render(ch, remaining)
		if cb.text == "" {
			continue
		}
		regs = append(regs, shift(cb.regions, x, 0)...)
		parts = append(parts, cb.text)
		x += cb.width()
		remaining -= cb.width()
		if remaining < 1 {
			break
		}
	}
	if len(parts) == 0 {
		return block{}
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	st := lipgloss.NewStyle().Padding(padY, padX)
	return block{text: st.Render(joined), regions: shift(regs, padX, padY)}
}

func (r *renderer) text(n portfolio.Node, maxW int) block {
	if n.Text == "" {
		return block{}
	}
	st := r.style(n.Style)
	if lipgloss.Width(n.Text) > maxW {
		st = st.Width(maxW)
	}
	return block{text: st.Render(n.Text)}
}

func (r *renderer) tile(n portfolio.Node, maxW int) block {
	w := min(max(r.cols(n.Style.WidthPx), 1), maxW)
	h := max(r.rows(n.Style.HeightPx), 3)
	padX := min(r.cols(n.Style.PadX), w/4)
	padY := min(r.rows(n.Style.PadY), h/4)

	st := r.style(n.Style).
		Width(w).
		Height(h).
		MaxHeight(h).
		Padding(padY, padX)

	content := n.Text
	if len(n.Children) > 0 {
		var desc []string
		for _, ch := range n.Children {
			desc = append(desc, ch.Text)
		}
		content += "\n\n" + strings.Join(desc, "\n")
		st = st.Bold(false)
		if fg := n.Children[0].Style.Fg; fg != "" {
			st = st.Foreground(r.theme.color(fg))
		}
	}
	return block{text: st.Render(content)}
}

func (r *renderer) button(n portfolio.Node, maxW int) block {
	padX := min(r.cols(n.Style.PadX), 4)
	st := r.style(n.Style).Padding(0, padX)
	if lipgloss.Width(n.Text)+2*padX > maxW {
		st = st.Padding(0).Width(maxW)
	}
	return block{text: st.Render(n.Text)}
}

func (r *renderer) input(n portfolio.Node, maxW int) block {
	w := min(max(r.cols(n.Style.WidthPx), inputChrome+1), maxW)
	content, ok := r.inputs[n.ID]
	if !ok {
		content = n.Text
		if content == "" {
			content = lipgloss.NewStyle().Foreground(r.theme.muted()).Render(n.Placeholder)
		}
	}
	border := lipgloss.RoundedBorder()
	if n.ID == r.focus {
		border = lipgloss.ThickBorder()
	}
	st := lipgloss.NewStyle().
		Border(border).
		BorderForeground(r.theme.color(n.Style.Border)).
		Padding(0, 1).
		Width(w - 2)
	return block{text: st.Render(content)}
}

func (r *renderer) image(n portfolio.Node, maxW int) block {
	w := min(max(r.cols(n.Style.WidthPx), 4), maxW)
	h := max(r.rows(n.Style.HeightPx), 3)
	st := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(r.theme.color(n.Style.Border)).
		Foreground(r.theme.color(n.Style.Fg)).
		Width(w-2).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center)
	return block{text: st.Render(n.Text + "\n" + n.URL)}
}

// markdownCache keeps one glamour renderer per wrap width and the last output.
type markdownCache struct {
	style string
	width int
	tr    *glamour.TermRenderer
	src   string
	out   string
}

func newMarkdownCache(style string) *markdownCache {
	return &markdownCache{style: style}
}

func (c *markdownCache) render(src string, width int) string {
	if c.tr == nil || c.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(c.style),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(lipgloss.ColorProfile()),
		)
		if err != nil {
			return lipgloss.NewStyle().Width(width).Render(src)
		}
		c.tr, c.width, c.src = tr, width, ""
	}
	if c.src == src && c.out != "" {
		return c.out
	}
	out, err := c.tr.Render(src)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	out = strings.Trim(out, "\n")
	if lipgloss.Width(out) > width {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	c.src, c.out = src, out
	return out
}
