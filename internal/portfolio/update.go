package portfolio

import "github.com/ensigniasec/portfolio/internal/site"

// Reducer binds Update to the content it needs to resolve tile links.
type Reducer struct {
	links map[Project]string
}

// NewReducer indexes project links from content.
func NewReducer(c site.Content) Reducer {
	links := make(map[Project]string, len(c.Projects))
	for _, p := range c.Projects {
		if id, ok := ProjectByKey(p.ID); ok && p.URL != "" {
			links[id] = p.URL
		}
	}
	return Reducer{links: links}
}

// Update applies msg to s and returns the new state and the effects to run.
// It never blocks and never fails; unknown messages are ignored.
func (r Reducer) Update(s State, msg Msg) (State, []Effect) {
	var fx []Effect
	switch m := msg.(type) {
	case ResizeMsg:
		s.resize(m.Width, m.Height)
	case NavigateMsg:
		fx = s.navigate(m.Tab)
	case HoverNavMsg:
		s.hoverNav(m.Tab)
	case LeaveNavMsg:
		s.leaveNav()
	case HoverProjectMsg:
		s.hoverProject(m.Project)
	case LeaveProjectMsg:
		s.leaveProject()
	case ClickProjectMsg:
		fx = s.clickProject(m.Project, r.links)
	case UpdateFieldMsg:
		s.updateField(m.Field, m.Value)
	case SubmitHoverMsg:
		s.submitHover()
	case SubmitLeaveMsg:
		s.submitLeave()
	case SubmitPressMsg:
		s.submitPress()
	case SubmitReleaseMsg:
		fx = s.submitRelease()
	case SubmissionResultMsg:
		// Outcome is not shown; success and failure render the same.
	}
	return s, fx
}

// Link returns the URL of p, if it has one.
func (r Reducer) Link(p Project) (string, bool) {
	u, ok := r.links[p]
	return u, ok
}
