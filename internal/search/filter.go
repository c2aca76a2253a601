package search

import "strings"

// Filter keeps the candidates satisfying every supplied structured
// filter AND, when a free-text query is present, the free-text
// predicate. Empty filter values match everything.
func Filter(candidates []Candidate, req Request) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !matchesFilters(c, req) {
			continue
		}
		if req.Query != "" && !matchesQuery(c, req.Query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesFilters(c Candidate, req Request) bool {
	if req.Major != "" && c.Profile.Major != req.Major {
		return false
	}
	if req.Location != "" && c.Profile.Location != req.Location {
		return false
	}
	if req.Skill != "" && !anySkillNameContains(c.Skills, req.Skill) {
		return false
	}
	if req.Technology != "" && !anyProjectUsesTechnology(c.Projects, req.Technology) {
		return false
	}
	return true
}

// matchesQuery is the free-text predicate: an OR across the profile's
// text fields and every owned skill and project, all case-insensitive
// substring matches.
func matchesQuery(c Candidate, q string) bool {
	if containsFold(c.Profile.FullName, q) ||
		containsFold(c.Profile.Bio, q) ||
		containsFold(c.Profile.Major, q) ||
		containsFold(c.Profile.Institution, q) {
		return true
	}
	for _, s := range c.Skills {
		if containsFold(s.Name, q) || containsFold(s.Description, q) {
			return true
		}
	}
	for _, p := range c.Projects {
		if containsFold(p.Title, q) || containsFold(p.Description, q) {
			return true
		}
	}
	return false
}

func anySkillNameContains(skills []Skill, substr string) bool {
	for _, s := range skills {
		if containsFold(s.Name, substr) {
			return true
		}
	}
	return false
}

func anyProjectUsesTechnology(projects []Project, tech string) bool {
	for _, p := range projects {
		for _, t := range p.Technologies {
			if t == tech {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
