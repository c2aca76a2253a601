package search

import "github.com/google/uuid"

// Join attaches owned skills and projects to every visible profile.
// Invisible profiles are dropped here, which also makes their skills
// and projects unreachable downstream. A profile with no skills or
// projects still yields a candidate with empty lists.
func Join(profiles []Profile, skills []Skill, projects []Project) []Candidate {
	skillsByOwner := make(map[uuid.UUID][]Skill, len(profiles))
	for _, s := range skills {
		skillsByOwner[s.ProfileID] = append(skillsByOwner[s.ProfileID], s)
	}

	projectsByOwner := make(map[uuid.UUID][]Project, len(profiles))
	for _, p := range projects {
		projectsByOwner[p.ProfileID] = append(projectsByOwner[p.ProfileID], p)
	}

	out := make([]Candidate, 0, len(profiles))
	for _, p := range profiles {
		if !p.Visible {
			continue
		}
		c := Candidate{
			Profile:  p,
			Skills:   skillsByOwner[p.ID],
			Projects: projectsByOwner[p.ID],
		}
		if c.Skills == nil {
			c.Skills = []Skill{}
		}
		if c.Projects == nil {
			c.Projects = []Project{}
		}
		out = append(out, c)
	}
	return out
}
