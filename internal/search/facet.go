package search

import "sort"

const topFacetLimit = 20

type Facets struct {
	Majors              []string
	Locations           []string
	PopularSkills       []string
	PopularTechnologies []string
}

// AggregateFacets computes filter domains over the whole corpus,
// independent of any active query or filter. Majors and locations come
// from visible profiles only; skill and technology popularity is
// counted over the flat skill and project collections. A project
// contributes one count per technology it lists.
func AggregateFacets(profiles []Profile, skills []Skill, projects []Project) Facets {
	majors := make(map[string]struct{})
	locations := make(map[string]struct{})
	for _, p := range profiles {
		if !p.Visible {
			continue
		}
		if p.Major != "" {
			majors[p.Major] = struct{}{}
		}
		if p.Location != "" {
			locations[p.Location] = struct{}{}
		}
	}

	skillCounts := make(map[string]int)
	for _, s := range skills {
		if s.Name != "" {
			skillCounts[s.Name]++
		}
	}

	techCounts := make(map[string]int)
	for _, p := range projects {
		for _, t := range p.Technologies {
			if t != "" {
				techCounts[t]++
			}
		}
	}

	return Facets{
		Majors:              sortedKeys(majors),
		Locations:           sortedKeys(locations),
		PopularSkills:       topByCount(skillCounts, topFacetLimit),
		PopularTechnologies: topByCount(techCounts, topFacetLimit),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// topByCount returns up to n names ordered by descending count, ties
// broken by ascending name.
func topByCount(counts map[string]int, n int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}
