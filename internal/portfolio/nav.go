package portfolio

import "github.com/ensigniasec/portfolio/internal/layout"

func (s *State) navigate(t Tab) []Effect {
	if t == NoTab {
		return nil
	}
	s.ActiveTab = t
	return []Effect{ScrollEffect{
		OffsetY:  layout.ScrollOffset(t.section(), s.Screen.Width),
		Duration: layout.ScrollDuration,
		Easing:   EaseInOutCubic,
	}}
}

func (s *State) hoverNav(t Tab) { s.HoveredTab = t }

func (s *State) leaveNav() { s.HoveredTab = NoTab }
