// Package portfolio is the UI state model of the portfolio page: a pure reducer over
// host events that returns the effects the host must run, and a pure render of state
// into a visual tree.
package portfolio

import (
	"fmt"

	"github.com/ensigniasec/portfolio/internal/layout"
)

// Tab is a navigation target. NoTab means none.
type Tab int

const (
	NoTab Tab = iota
	Portfolio
	About
	Contact
)

// Tabs lists tabs in display order.
func Tabs() []Tab { return []Tab{Portfolio, About, Contact} }

func (t Tab) String() string {
	switch t {
	case NoTab:
		return "none"
	case Portfolio:
		return "portfolio"
	case About:
		return "about"
	case Contact:
		return "contact"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Label is the text shown in the navigation bar.
func (t Tab) Label() string {
	switch t {
	case Portfolio:
		return "Portfolio"
	case About:
		return "About"
	case Contact:
		return "Contact"
	default:
		return ""
	}
}

func (t Tab) section() layout.Section {
	switch t {
	case About:
		return layout.SectionAbout
	case Contact:
		return layout.SectionContact
	default:
		return layout.SectionPortfolio
	}
}

// Project is a gallery tile. NoProject means none.
type Project int

const (
	NoProject Project = iota
	Roco
	Honeysuckle
	Luna
	DailyUI
	ContraryGarden
	Blank
)

// Projects lists tiles in gallery order.
func Projects() []Project {
	return []Project{Roco, Honeysuckle, Luna, DailyUI, ContraryGarden, Blank}
}

// Key is the content id of the tile.
func (p Project) Key() string {
	switch p {
	case Roco:
		return "roco"
	case Honeysuckle:
		return "honeysuckle"
	case Luna:
		return "luna"
	case DailyUI:
		return "dailyui"
	case ContraryGarden:
		return "contrarygarden"
	case Blank:
		return "blank"
	default:
		return ""
	}
}

func (p Project) String() string {
	if k := p.Key(); k != "" {
		return k
	}
	return fmt.Sprintf("project(%d)", int(p))
}

// ProjectByKey resolves a content id.
func ProjectByKey(key string) (Project, bool) {
	for _, p := range Projects() {
		if p.Key() == key {
			return p, true
		}
	}
	return NoProject, false
}

// Field names one input of the contact form.
type Field int

const (
	FirstName Field = iota
	LastName
	EmailAddress
	EmailMessage
)

// Fields lists form fields in focus order.
func Fields() []Field { return []Field{FirstName, LastName, EmailAddress, EmailMessage} }

func (f Field) String() string {
	switch f {
	case FirstName:
		return "first"
	case LastName:
		return "last"
	case EmailAddress:
		return "email"
	case EmailMessage:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// ContactForm is the contact form payload.
type ContactForm struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	EmailMessage string `json:"emailMessage"`
}

// Get returns the value of f.
func (c ContactForm) Get(f Field) string {
	switch f {
	case FirstName:
		return c.FirstName
	case LastName:
		return c.LastName
	case EmailAddress:
		return c.EmailAddress
	case EmailMessage:
		return c.EmailMessage
	default:
		return ""
	}
}

func (c *ContactForm) set(f Field, v string) {
	switch f {
	case FirstName:
		c.FirstName = v
	case LastName:
		c.LastName = v
	case EmailAddress:
		c.EmailAddress = v
	case EmailMessage:
		c.EmailMessage = v
	}
}

// EmailState classifies the email field.
type EmailState int

const (
	EmailEmpty EmailState = iota
	EmailValid
	EmailInvalid
)

func (e EmailState) String() string {
	switch e {
	case EmailEmpty:
		return "empty"
	case EmailValid:
		return "valid"
	case EmailInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("email(%d)", int(e))
	}
}

// SubmitState is the submit button gesture state. Submitted is terminal.
type SubmitState int

const (
	Unsubmitted SubmitState = iota
	Hovered
	Pressed
	Submitted
)

func (s SubmitState) String() string {
	switch s {
	case Unsubmitted:
		return "unsubmitted"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("submit(%d)", int(s))
	}
}

// State is the whole UI state record.
type State struct {
	Screen layout.ScreenSize
	Device layout.Device
	Scale  layout.Scale

	ActiveTab  Tab
	HoveredTab Tab

	HoveredProject Project

	Form              ContactForm
	Email             EmailState
	Submit            SubmitState
	InvalidSubmission bool
}

// New returns the initial state for a viewport.
func New(width, height float64) State {
	s := State{ActiveTab: Portfolio}
	s.resize(width, height)
	return s
}

func (s *State) resize(width, height float64) {
	s.Screen = layout.ScreenSize{Width: width, Height: height}
	s.Device = layout.Classify(width, height)
	s.Scale = layout.NewScale(width, height)
}
