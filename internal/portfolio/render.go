package portfolio

import (
	"github.com/ensigniasec/portfolio/internal/layout"
	"github.com/ensigniasec/portfolio/internal/site"
)

// Copy shown on the page outside of content.
const (
	portfolioHeading = "Selected work"
	aboutHeading     = "About"
	contactHeading   = "Say hello"
	contactLead      = "Have a project in mind? Leave a note and I'll reply by email."
	resumeLabel      = "Download résumé"
	invalidEmailText = "Please enter a valid email address."
	submittedText    = "Thanks for reaching out! I'll get back to you soon."
	submitLabel      = "Send message"
	submittedLabel   = "Message sent"
)

// Render maps state to the visual tree. It reads nothing but its arguments.
// The root has exactly two children: the navigation bar and the scrolling body.
func Render(s State, c site.Content) Node {
	return Node{
		Kind: KindColumn,
		Style: Style{
			Bg:      c.Palette.Background,
			WidthPx: s.Screen.Width,
		},
		Children: []Node{
			renderNav(s, c),
			{
				Kind: KindColumn,
				ID:   BodyID,
				Style: Style{
					PadX:  s.Scale.Pad.LG,
					GapPx: s.Scale.Pad.XL,
				},
				Children: []Node{
					renderGallery(s, c),
					renderAbout(s, c),
					renderContact(s, c),
				},
			},
		},
	}
}

func renderNav(s State, c site.Content) Node {
	sc := s.Scale
	tabs := make([]Node, 0, len(Tabs()))
	for _, t := range Tabs() {
		st := Style{Fg: c.Palette.Text, FontPx: sc.Font.MD}
		if t == s.ActiveTab {
			st.Fg = c.Palette.Accent
			st.Bold = true
		}
		if t == s.HoveredTab {
			st.Fg = c.Palette.Highlight
			st.Underline = true
		}
		tabs = append(tabs, Node{Kind: KindLink, ID: TabID(t), Text: t.Label(), Style: st})
	}
	return Node{
		Kind: KindRow,
		ID:   NavID,
		Style: Style{
			Bg:    c.Palette.Background,
			PadX:  sc.Pad.LG,
			PadY:  sc.Pad.XS,
			GapPx: sc.Pad.MD,
		},
		Children: append([]Node{{
			Kind:  KindText,
			Text:  c.Name,
			Style: Style{Fg: c.Palette.Text, FontPx: sc.Font.LG, Bold: true},
		}}, tabs...),
	}
}

func heading(text string, s State, c site.Content) Node {
	return Node{
		Kind:  KindText,
		Text:  text,
		Style: Style{Fg: c.Palette.Text, FontPx: s.Scale.Font.XXL, Bold: true, PadY: s.Scale.Pad.XS},
	}
}

func renderGallery(s State, c site.Content) Node {
	sc := s.Scale
	cols := sc.Columns
	if cols < 1 {
		cols = 1
	}
	var rows []Node
	var row []Node
	for _, p := range Projects() {
		row = append(row, renderTile(p, s, c))
		if len(row) == cols {
			rows = append(rows, Node{Kind: KindRow, Style: Style{GapPx: sc.Pad.SM}, Children: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, Node{Kind: KindRow, Style: Style{GapPx: sc.Pad.SM}, Children: row})
	}
	return Node{
		Kind: KindColumn,
		Style: Style{
			GapPx:     sc.Pad.SM,
			MinHeight: layout.ScrollOffset(layout.SectionAbout, s.Screen.Width),
		},
		Children: append([]Node{heading(portfolioHeading, s, c)}, rows...),
	}
}

func renderTile(p Project, s State, c site.Content) Node {
	sc := s.Scale
	info, _ := c.Project(p.Key())
	n := Node{
		Kind: KindTile,
		ID:   TileID(p),
		Text: info.Name,
		URL:  info.URL,
		Style: Style{
			Fg:       c.Palette.Background,
			Bg:       c.Palette.Accent,
			FontPx:   sc.Font.LG,
			WidthPx:  sc.Tile,
			HeightPx: sc.Tile,
			PadX:     sc.Pad.SM,
			PadY:     sc.Pad.SM,
			Bold:     true,
		},
	}
	if p == Blank {
		n.Style.Bg = c.Palette.Muted
	}
	if p == s.HoveredProject && info.Description != "" {
		n.Style.Bg = c.Palette.Overlay
		n.Children = []Node{{
			Kind:  KindText,
			Text:  info.Description,
			Style: Style{Fg: c.Palette.Background, FontPx: sc.Font.SM},
		}}
	}
	return n
}

func renderAbout(s State, c site.Content) Node {
	sc := s.Scale
	img := Node{
		Kind: KindImage,
		Text: c.Name,
		URL:  c.Assets.Headshot,
		Style: Style{
			Fg:       c.Palette.Muted,
			Border:   c.Palette.Muted,
			WidthPx:  sc.Tile * 0.75,
			HeightPx: sc.Tile * 0.75,
		},
	}
	text := Node{
		Kind:  KindColumn,
		Style: Style{GapPx: sc.Pad.SM},
		Children: []Node{
			{Kind: KindText, Text: c.Title, Style: Style{Fg: c.Palette.Muted, FontPx: sc.Font.MD}},
			{Kind: KindMarkdown, Text: c.Bio, Style: Style{Fg: c.Palette.Text, FontPx: sc.Font.SM}},
			{
				Kind:  KindLink,
				ID:    LinkID("resume"),
				Text:  resumeLabel,
				URL:   c.Assets.Resume,
				Style: Style{Fg: c.Palette.Accent, Underline: true, FontPx: sc.Font.SM},
			},
		},
	}
	kind := KindRow
	if s.Device == layout.Phone {
		kind = KindColumn
	}
	return Node{
		Kind: KindColumn,
		Style: Style{
			GapPx: sc.Pad.SM,
			MinHeight: layout.ScrollOffset(layout.SectionContact, s.Screen.Width) -
				layout.ScrollOffset(layout.SectionAbout, s.Screen.Width),
		},
		Children: []Node{
			heading(aboutHeading, s, c),
			{Kind: kind, Style: Style{GapPx: sc.Pad.LG}, Children: []Node{img, text}},
		},
	}
}

// contentWidth is the body width inside its horizontal padding.
func contentWidth(s State) float64 {
	return s.Screen.Width - 2*s.Scale.Pad.LG
}

func input(f Field, placeholder string, width float64, s State, c site.Content) Node {
	sc := s.Scale
	n := Node{
		Kind:        KindInput,
		ID:          FieldID(f),
		Text:        s.Form.Get(f),
		Placeholder: placeholder,
		Multiline:   f == EmailMessage,
		Style: Style{
			Fg:      c.Palette.Text,
			Border:  c.Palette.Muted,
			FontPx:  sc.Font.SM,
			PadX:    sc.Pad.XS,
			WidthPx: width,
		},
	}
	if f == EmailAddress {
		switch s.Email {
		case EmailValid:
			n.Style.Border = c.Palette.Success
		case EmailInvalid:
			n.Style.Border = c.Palette.Error
		case EmailEmpty:
		}
	}
	return n
}

func renderContact(s State, c site.Content) Node {
	sc := s.Scale
	children := []Node{
		heading(contactHeading, s, c),
		{Kind: KindText, Text: contactLead, Style: Style{Fg: c.Palette.Muted, FontPx: sc.Font.SM}},
	}

	if s.Submit == Submitted {
		children = append(children, Node{
			Kind:  KindText,
			Text:  submittedText,
			Style: Style{Fg: c.Palette.Success, FontPx: sc.Font.MD, Bold: true},
		})
	} else {
		full := contentWidth(s)
		nameKind, nameWidth := KindRow, (full-sc.Pad.SM)/2
		if s.Device == layout.Phone {
			nameKind, nameWidth = KindColumn, full
		}
		children = append(children,
			Node{Kind: nameKind, Style: Style{GapPx: sc.Pad.SM}, Children: []Node{
				input(FirstName, "First name", nameWidth, s, c),
				input(LastName, "Last name", nameWidth, s, c),
			}},
			input(EmailAddress, "Email address", full, s, c),
			input(EmailMessage, "Message", full, s, c),
		)
		if s.InvalidSubmission {
			children = append(children, Node{
				Kind:  KindText,
				Text:  invalidEmailText,
				Style: Style{Fg: c.Palette.Error, FontPx: sc.Font.SM},
			})
		}
	}
	children = append(children, renderSubmit(s, c))

	links := make([]Node, 0, len(c.Contacts))
	for _, l := range c.Contacts {
		links = append(links, Node{
			Kind:  KindLink,
			ID:    LinkID(l.Label),
			Text:  l.Label,
			URL:   l.URL,
			Style: Style{Fg: c.Palette.Accent, Underline: true, FontPx: sc.Font.SM},
		})
	}
	children = append(children, Node{Kind: KindRow, Style: Style{GapPx: sc.Pad.MD}, Children: links})

	return Node{Kind: KindColumn, Style: Style{GapPx: sc.Pad.SM, PadY: sc.Pad.MD}, Children: children}
}

func renderSubmit(s State, c site.Content) Node {
	sc := s.Scale
	st := Style{
		Fg:     c.Palette.Background,
		Bg:     c.Palette.Accent,
		FontPx: sc.Font.MD,
		PadX:   sc.Pad.MD,
		PadY:   sc.Pad.XS,
	}
	label := submitLabel
	switch s.Submit {
	case Hovered:
		st.Bg = c.Palette.Highlight
	case Pressed:
		st.Bg = c.Palette.Highlight
		st.Bold = true
	case Submitted:
		st.Bg = c.Palette.Success
		label = submittedLabel
	case Unsubmitted:
	}
	return Node{Kind: KindButton, ID: SubmitID, Text: label, Style: st}
}
