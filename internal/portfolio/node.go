package portfolio

import "strings"

// Kind is the visual role of a node.
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindText
	KindMarkdown
	KindTile
	KindButton
	KindInput
	KindLink
	KindImage
)

// Style is node geometry in pixels plus palette colors.
type Style struct {
	Fg, Bg     string
	Border     string
	Bold       bool
	Underline  bool
	FontPx     float64
	PadX, PadY float64
	GapPx      float64
	WidthPx    float64
	HeightPx   float64
	MinHeight  float64
}

// Node is one element of the rendered tree. A non-empty ID makes it a hit target.
type Node struct {
	Kind        Kind
	ID          string
	Text        string
	Placeholder string
	URL         string
	Multiline   bool
	Style       Style
	Children    []Node
}

// Find returns the first node with id in depth-first order.
func (n Node) Find(id string) (Node, bool) {
	if n.ID == id {
		return n, true
	}
	for _, c := range n.Children {
		if f, ok := c.Find(id); ok {
			return f, true
		}
	}
	return Node{}, false
}

// Walk visits n and its descendants depth-first.
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Hit target ids.
const (
	NavID      = "nav"
	BodyID     = "body"
	SubmitID   = "submit"
	tabPrefix  = "tab:"
	tilePrefix = "tile:"
	fieldPfx   = "field:"
	linkPrefix = "link:"
)

func TabID(t Tab) string         { return tabPrefix + t.String() }
func TileID(p Project) string    { return tilePrefix + p.Key() }
func FieldID(f Field) string     { return fieldPfx + f.String() }
func LinkID(label string) string { return linkPrefix + strings.ToLower(label) }

// TargetKind classifies a parsed hit id.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTab
	TargetTile
	TargetField
	TargetSubmit
	TargetLink
)

// Target is a decoded hit id.
type Target struct {
	Kind    TargetKind
	Tab     Tab
	Project Project
	Field   Field
	Name    string
}

// ParseID decodes a hit id produced by Render.
func ParseID(id string) Target {
	switch {
	case id == SubmitID:
		return Target{Kind: TargetSubmit}
	case strings.HasPrefix(id, tabPrefix):
		name := strings.TrimPrefix(id, tabPrefix)
		for _, t := range Tabs() {
			if t.String() == name {
				return Target{Kind: TargetTab, Tab: t}
			}
		}
	case strings.HasPrefix(id, tilePrefix):
		if p, ok := ProjectByKey(strings.TrimPrefix(id, tilePrefix)); ok {
			return Target{Kind: TargetTile, Project: p}
		}
	case strings.HasPrefix(id, fieldPfx):
		name := strings.TrimPrefix(id, fieldPfx)
		for _, f := range Fields() {
			if f.String() == name {
				return Target{Kind: TargetField, Field: f}
			}
		}
	case strings.HasPrefix(id, linkPrefix):
		return Target{Kind: TargetLink, Name: strings.TrimPrefix(id, linkPrefix)}
	}
	return Target{Kind: TargetNone}
}
