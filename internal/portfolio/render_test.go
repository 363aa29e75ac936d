//nolint:testpackage // White-box tests use unexported constants.
package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/portfolio/internal/site"
)

func TestRender_Structure(t *testing.T) {
	t.Parallel()

	c := site.Default()
	root := Render(New(1200, 800), c)
	require.Len(t, root.Children, 2)
	assert.Equal(t, NavID, root.Children[0].ID)
	assert.Equal(t, BodyID, root.Children[1].ID)

	for _, tab := range Tabs() {
		_, ok := root.Find(TabID(tab))
		assert.True(t, ok, tab.String())
	}
	for _, p := range Projects() {
		n, ok := root.Find(TileID(p))
		require.True(t, ok, p.String())
		assert.InDelta(t, 1200*0.28, n.Style.WidthPx, 1e-9)
	}
	for _, f := range Fields() {
		_, ok := root.Find(FieldID(f))
		assert.True(t, ok, f.String())
	}
	_, ok := root.Find(SubmitID)
	assert.True(t, ok)
}

func TestRender_HoverOverlay(t *testing.T) {
	t.Parallel()

	c := site.Default()
	s := New(1200, 800)
	s.HoveredProject = Luna
	root := Render(s, c)

	overlays := 0
	root.Walk(func(n Node) {
		if n.Kind == KindTile && len(n.Children) > 0 {
			overlays++
			assert.Equal(t, TileID(Luna), n.ID)
			assert.Equal(t, c.Palette.Overlay, n.Style.Bg)
		}
	})
	assert.Equal(t, 1, overlays)
}

func TestRender_NavHighlight(t *testing.T) {
	t.Parallel()

	c := site.Default()
	s := New(1200, 800)
	s.ActiveTab = About
	s.HoveredTab = Contact
	root := Render(s, c)

	about, _ := root.Find(TabID(About))
	contact, _ := root.Find(TabID(Contact))
	port, _ := root.Find(TabID(Portfolio))
	assert.Equal(t, c.Palette.Accent, about.Style.Fg)
	assert.Equal(t, c.Palette.Highlight, contact.Style.Fg)
	assert.Equal(t, c.Palette.Text, port.Style.Fg)
}

func TestRender_ContactStates(t *testing.T) {
	t.Parallel()

	c := site.Default()
	r := NewReducer(c)

	s := New(500, 900)
	s, _ = r.Update(s, UpdateFieldMsg{Field: EmailAddress, Value: "abc"})
	s, _ = r.Update(s, SubmitPressMsg{})
	root := Render(s, c)
	email, _ := root.Find(FieldID(EmailAddress))
	assert.Equal(t, c.Palette.Error, email.Style.Border)
	assert.True(t, hasText(root, invalidEmailText))

	s, _ = r.Update(s, UpdateFieldMsg{Field: EmailAddress, Value: "abc@example.com"})
	s, _ = r.Update(s, SubmitPressMsg{})
	s, _ = r.Update(s, SubmitReleaseMsg{})
	root = Render(s, c)
	assert.True(t, hasText(root, submittedText))
	_, ok := root.Find(FieldID(EmailAddress))
	assert.False(t, ok)
	btn, _ := root.Find(SubmitID)
	assert.Equal(t, submittedLabel, btn.Text)
}

func TestRender_PhoneGalleryIsSingleColumn(t *testing.T) {
	t.Parallel()

	root := Render(New(390, 844), site.Default())
	root.Walk(func(n Node) {
		if n.Kind != KindRow {
			return
		}
		tiles := 0
		for _, ch := range n.Children {
			if ch.Kind == KindTile {
				tiles++
			}
		}
		assert.LessOrEqual(t, tiles, 1)
	})
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	c := site.Default()
	s := New(1024, 768)
	assert.Equal(t, Render(s, c), Render(s, c))
}

func hasText(root Node, text string) bool {
	found := false
	root.Walk(func(n Node) {
		if n.Text == text {
			found = true
		}
	})
	return found
}
