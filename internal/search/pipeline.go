package search

// Execute runs the full ranking pipeline over one corpus snapshot:
// join, filter, score, sort, paginate. The returned page preserves the
// pipeline ordering; metadata reflects the pre-slice count.
func Execute(req Request, profiles []Profile, skills []Skill, projects []Project) ([]Candidate, Metadata) {
	candidates := Join(profiles, skills, projects)
	candidates = Filter(candidates, req)
	candidates = Score(candidates, req.Query)
	candidates = Sort(candidates, req.Sort, req.Query)
	return Paginate(candidates, req.Page, req.Limit)
}
