package layout

import "time"

// Section scroll anchors as fractions of viewport width.
const (
	AboutOffsetFraction   = 0.62
	ContactOffsetFraction = 1.35
)

// ScrollDuration is how long the animated scroll to a section takes.
const ScrollDuration = 800 * time.Millisecond

// Section identifies a scroll anchor on the page.
type Section int

const (
	SectionPortfolio Section = iota
	SectionAbout
	SectionContact
)

// ScrollOffset is the vertical offset in pixels of section at the given width.
func ScrollOffset(s Section, width float64) float64 {
	switch s {
	case SectionAbout:
		return width * AboutOffsetFraction
	case SectionContact:
		return width * ContactOffsetFraction
	default:
		return 0
	}
}
