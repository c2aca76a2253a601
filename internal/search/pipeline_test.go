package search

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func pipelineCorpus() ([]Profile, []Skill, []Project) {
	ada := testProfile(1, "Ada Lovelace")
	ada.Major = "Computer Science"
	ada.Location = "Jakarta"

	grace := testProfile(2, "Grace Hopper")
	grace.Major = "Mathematics"
	grace.Location = "Bandung"

	alan := testProfile(3, "Alan Turing")
	alan.Major = "Computer Science"
	alan.Location = "Yogyakarta"

	profiles := []Profile{ada, grace, alan}
	skills := []Skill{
		testSkill(1, 1, "React"),
		testSkill(2, 2, "Go"),
		testSkill(3, 3, "Python"),
	}
	projects := []Project{
		testProject(1, 2, "Compiler", "Go"),
	}
	return profiles, skills, projects
}

func TestExecute_RelevanceRanksMatchingProfileFirst(t *testing.T) {
	profiles, skills, projects := pipelineCorpus()

	page, md := Execute(Request{Query: "react", Sort: SortRelevance, Page: 1, Limit: 12}, profiles, skills, projects)
	if md.Total != 1 {
		t.Fatalf("expected only the matching profile, got total=%d", md.Total)
	}
	if page[0].Profile.ID != testID(1) {
		t.Fatalf("expected Ada first, got %s", page[0].Profile.ID)
	}
	if page[0].Score < 3 {
		t.Fatalf("expected a positive relevance score, got %d", page[0].Score)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	profiles, skills, projects := pipelineCorpus()
	req := Request{Query: "a", Sort: SortRelevance, Page: 1, Limit: 12}

	first, firstMD := Execute(req, profiles, skills, projects)
	second, secondMD := Execute(req, profiles, skills, projects)

	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("repeated request must return identical ordering: %v vs %v", ids(first), ids(second))
	}
	if firstMD != secondMD {
		t.Fatalf("repeated request must return identical metadata: %+v vs %+v", firstMD, secondMD)
	}
}

func TestExecute_PaginationCompleteness(t *testing.T) {
	profiles := make([]Profile, 0, 7)
	for i := 1; i <= 7; i++ {
		profiles = append(profiles, testProfile(i, "P"))
	}

	req := Request{Sort: SortDefault, Limit: 3}
	_, md := Execute(Request{Sort: SortDefault, Page: 1, Limit: 3}, profiles, nil, nil)

	seen := map[uuid.UUID]bool{}
	collected := 0
	for page := 1; page <= md.TotalPages; page++ {
		req.Page = page
		items, pageMD := Execute(req, profiles, nil, nil)
		if pageMD.Total != md.Total {
			t.Fatalf("total changed across pages: %d vs %d", pageMD.Total, md.Total)
		}
		for _, c := range items {
			if seen[c.Profile.ID] {
				t.Fatalf("duplicate id across pages: %s", c.Profile.ID)
			}
			seen[c.Profile.ID] = true
			collected++
		}
	}
	if collected != md.Total {
		t.Fatalf("concatenated pages must cover the full set: got %d of %d", collected, md.Total)
	}
}

func TestExecute_InvisibleProfileNeverAppears(t *testing.T) {
	profiles, skills, projects := pipelineCorpus()
	hidden := testProfile(9, "Hidden Match")
	hidden.Major = "Computer Science"
	hidden.Visible = false
	profiles = append(profiles, hidden)
	skills = append(skills, testSkill(9, 9, "React"))

	page, md := Execute(Request{Major: "Computer Science", Page: 1, Limit: 12}, profiles, skills, projects)
	if md.Total != 2 {
		t.Fatalf("expected 2 visible matches, got %d", md.Total)
	}
	for _, c := range page {
		if c.Profile.ID == testID(9) {
			t.Fatalf("invisible profile leaked into results")
		}
	}
}

func TestExecute_RelevanceMonotonicity(t *testing.T) {
	profiles, skills, projects := pipelineCorpus()
	page, _ := Execute(Request{Query: "o", Sort: SortRelevance, Page: 1, Limit: 12}, profiles, skills, projects)

	for i := 1; i < len(page); i++ {
		if page[i-1].Score < page[i].Score {
			t.Fatalf("scores must be non-increasing under relevance sort: %d before %d", page[i-1].Score, page[i].Score)
		}
	}
}
