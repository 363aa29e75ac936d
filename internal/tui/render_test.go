//nolint:testpackage // White-box tests exercise unexported layout helpers.
package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/portfolio/internal/portfolio"
	"github.com/ensigniasec/portfolio/internal/site"
)

func newTestRenderer() *renderer {
	return &renderer{
		cellW: defaultCellWidth,
		cellH: defaultCellHeight,
		theme: theme{palette: site.Default().Palette},
		md:    newMarkdownCache("light"),
	}
}

func regionByID(t *testing.T, rs []region, id string) region {
	t.Helper()
	for _, r := range rs {
		if r.id == id {
			return r
		}
	}
	require.Failf(t, "region not found", "id %q", id)
	return region{}
}

func TestRender_ColumnStacksRegions(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	b := r.render(portfolio.Node{
		Kind: portfolio.KindColumn,
		Style: portfolio.Style{
			GapPx: 2 * defaultCellHeight,
		},
		Children: []portfolio.Node{
			{Kind: portfolio.KindText, ID: "a", Text: "first"},
			{Kind: portfolio.KindText, ID: "b", Text: "second"},
		},
	}, 40)

	assert.Equal(t, region{id: "a", x: 0, y: 0, w: 5, h: 1}, regionByID(t, b.regions, "a"))
	assert.Equal(t, region{id: "b", x: 0, y: 3, w: 6, h: 1}, regionByID(t, b.regions, "b"))
	assert.Equal(t, 4, b.height())
}

func TestRender_RowPlacesChildrenSideBySide(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	b := r.render(portfolio.Node{
		Kind:  portfolio.KindRow,
		ID:    "row",
		Style: portfolio.Style{GapPx: 2 * defaultCellWidth},
		Children: []portfolio.Node{
			{Kind: portfolio.KindText, ID: "a", Text: "ab"},
			{Kind: portfolio.KindText, ID: "c", Text: "c"},
		},
	}, 40)

	require.Equal(t, "row", b.regions[0].id, "parent precedes children")
	assert.Equal(t, region{id: "a", x: 0, y: 0, w: 2, h: 1}, regionByID(t, b.regions, "a"))
	assert.Equal(t, region{id: "c", x: 4, y: 0, w: 1, h: 1}, regionByID(t, b.regions, "c"))
	assert.Equal(t, "c", hitTest(b.regions, 4, 0))
	assert.Equal(t, "row", hitTest(b.regions, 3, 0))
}

func TestRender_ColumnMinHeight(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	b := r.render(portfolio.Node{
		Kind:     portfolio.KindColumn,
		Style:    portfolio.Style{MinHeight: 10 * defaultCellHeight},
		Children: []portfolio.Node{{Kind: portfolio.KindText, Text: "x"}},
	}, 20)
	assert.Equal(t, 10, b.height())
}

func TestRender_TileIsFixedBox(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	b := r.render(portfolio.Node{
		Kind: portfolio.KindTile,
		ID:   "tile:roco",
		Text: "Roco",
		Style: portfolio.Style{
			WidthPx:  20 * defaultCellWidth,
			HeightPx: 6 * defaultCellHeight,
		},
	}, 80)
	assert.Equal(t, 20, b.width())
	assert.Equal(t, 6, b.height())
	assert.Contains(t, b.text, "Roco")

	narrow := r.render(portfolio.Node{
		Kind:  portfolio.KindTile,
		Style: portfolio.Style{WidthPx: 50 * defaultCellWidth, HeightPx: 4 * defaultCellHeight},
	}, 12)
	assert.Equal(t, 12, narrow.width(), "tiles shrink to the available width")
}

func TestRender_InputShowsPlaceholderOrLiveView(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	n := portfolio.Node{
		Kind:        portfolio.KindInput,
		ID:          portfolio.FieldID(portfolio.FirstName),
		Placeholder: "First name",
		Style:       portfolio.Style{WidthPx: 30 * defaultCellWidth},
	}
	b := r.render(n, 80)
	assert.Contains(t, b.text, "First name")
	assert.Equal(t, 30, b.width())
	assert.Equal(t, 3, b.height())

	r.inputs = map[string]string{n.ID: "Ada"}
	assert.Contains(t, r.render(n, 80).text, "Ada")
}

func TestRender_PageHasAllTargets(t *testing.T) {
	t.Parallel()

	c := site.Default()
	r := newTestRenderer()
	s := portfolio.New(160*defaultCellWidth, 50*defaultCellHeight)
	nav, body := r.page(portfolio.Render(s, c), 160)

	for _, tab := range portfolio.Tabs() {
		regionByID(t, nav.regions, portfolio.TabID(tab))
	}
	for _, p := range portfolio.Projects() {
		regionByID(t, body.regions, portfolio.TileID(p))
	}
	for _, f := range portfolio.Fields() {
		regionByID(t, body.regions, portfolio.FieldID(f))
	}
	regionByID(t, body.regions, portfolio.SubmitID)

	for _, line := range strings.Split(nav.text, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 160)
	}
}

func TestMarkdownCache_ReusesOutput(t *testing.T) {
	t.Parallel()

	c := newMarkdownCache("light")
	first := c.render("Hello **world**", 40)
	assert.Contains(t, first, "world")
	assert.Equal(t, first, c.render("Hello **world**", 40))

	wider := c.render("Hello **world**", 60)
	assert.Contains(t, wider, "world")
	assert.Equal(t, 60, c.width)
}
