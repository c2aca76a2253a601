package search

import (
	"bytes"
	"sort"
)

// Sort orders candidates in place for the requested mode. Every mode
// ends in an ascending-id tie-break so that repeated requests against
// an unchanged corpus paginate identically.
func Sort(candidates []Candidate, mode SortMode, query string) []Candidate {
	less := lessFunc(mode, query)
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
	return candidates
}

func lessFunc(mode SortMode, query string) func(a, b Candidate) bool {
	switch mode {
	case SortName:
		return func(a, b Candidate) bool {
			if a.Profile.FullName != b.Profile.FullName {
				return a.Profile.FullName < b.Profile.FullName
			}
			return idLess(a, b)
		}
	case SortSkills:
		return func(a, b Candidate) bool {
			if a.skillCount() != b.skillCount() {
				return a.skillCount() > b.skillCount()
			}
			if ap, bp := a.avgProficiency(), b.avgProficiency(); ap != bp {
				return ap > bp
			}
			return idLess(a, b)
		}
	case SortProjects:
		return func(a, b Candidate) bool {
			if a.projectCount() != b.projectCount() {
				return a.projectCount() > b.projectCount()
			}
			return idLess(a, b)
		}
	case SortEndorsements:
		return func(a, b Candidate) bool {
			if ae, be := a.endorsementSum(), b.endorsementSum(); ae != be {
				return ae > be
			}
			return idLess(a, b)
		}
	case SortRelevance:
		if query == "" {
			return newestFirst
		}
		return func(a, b Candidate) bool {
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			if a.skillCount() != b.skillCount() {
				return a.skillCount() > b.skillCount()
			}
			return idLess(a, b)
		}
	default:
		return newestFirst
	}
}

func newestFirst(a, b Candidate) bool {
	if !a.Profile.CreatedAt.Equal(b.Profile.CreatedAt) {
		return a.Profile.CreatedAt.After(b.Profile.CreatedAt)
	}
	return idLess(a, b)
}

func idLess(a, b Candidate) bool {
	return bytes.Compare(a.Profile.ID[:], b.Profile.ID[:]) < 0
}
