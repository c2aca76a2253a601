package search

// Relevance weights. Name and bio matches score once regardless of how
// often the query occurs; skill and project matches count per owned
// record.
const (
	weightFullName     = 10
	weightBio          = 5
	weightSkillName    = 3
	weightProjectTitle = 2
)

// Score sets each candidate's relevance score against the free-text
// query. With an empty query every score is zero and ordering falls
// back to recency.
func Score(candidates []Candidate, query string) []Candidate {
	if query == "" {
		return candidates
	}
	for i := range candidates {
		candidates[i].Score = ComputeRelevance(candidates[i], query)
	}
	return candidates
}

func ComputeRelevance(c Candidate, query string) int {
	if query == "" {
		return 0
	}

	score := 0
	if containsFold(c.Profile.FullName, query) {
		score += weightFullName
	}
	if containsFold(c.Profile.Bio, query) {
		score += weightBio
	}
	for _, s := range c.Skills {
		if containsFold(s.Name, query) {
			score += weightSkillName
		}
	}
	for _, p := range c.Projects {
		if containsFold(p.Title, query) {
			score += weightProjectTitle
		}
	}
	return score
}
