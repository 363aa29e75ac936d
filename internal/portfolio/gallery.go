package portfolio

func (s *State) hoverProject(p Project) { s.HoveredProject = p }

func (s *State) leaveProject() { s.HoveredProject = NoProject }

// clickProject clears the overlay so following the link does not leave it stuck.
func (s *State) clickProject(p Project, links map[Project]string) []Effect {
	s.HoveredProject = NoProject
	if u := links[p]; u != "" {
		return []Effect{OpenURLEffect{URL: u}}
	}
	return nil
}
