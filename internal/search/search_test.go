package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fixture ids are sequential so the ascending-id tie-break is easy to
// reason about in assertions.
func testID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func testTime(daysAgo int) time.Time {
	base := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, -daysAgo)
}

func testProfile(n int, name string) Profile {
	return Profile{
		ID:        testID(n),
		FullName:  name,
		Visible:   true,
		CreatedAt: testTime(n),
	}
}

func testSkill(n, owner int, name string) Skill {
	return Skill{
		ID:        testID(1000 + n),
		ProfileID: testID(owner),
		Name:      name,
	}
}

func testProject(n, owner int, title string, techs ...string) Project {
	return Project{
		ID:           testID(2000 + n),
		ProfileID:    testID(owner),
		Title:        title,
		Technologies: techs,
	}
}

func ids(candidates []Candidate) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Profile.ID)
	}
	return out
}
