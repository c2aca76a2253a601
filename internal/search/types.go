package search

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID          uuid.UUID
	FullName    string
	Bio         string
	Major       string
	Institution string
	Location    string
	Visible     bool
	CreatedAt   time.Time
}

type Skill struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Category     string
	Name         string
	Proficiency  int
	Endorsements int
	Description  string
}

type Project struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Title        string
	Description  string
	Technologies []string
}

// Candidate is one visible profile with its joined skills and projects,
// carried through the filter/score/sort/paginate stages.
type Candidate struct {
	Profile  Profile
	Skills   []Skill
	Projects []Project
	Score    int
}

func (c Candidate) skillCount() int {
	return len(c.Skills)
}

func (c Candidate) projectCount() int {
	return len(c.Projects)
}

func (c Candidate) avgProficiency() float64 {
	if len(c.Skills) == 0 {
		return 0
	}
	sum := 0
	for _, s := range c.Skills {
		sum += s.Proficiency
	}
	return float64(sum) / float64(len(c.Skills))
}

func (c Candidate) endorsementSum() int {
	sum := 0
	for _, s := range c.Skills {
		sum += s.Endorsements
	}
	return sum
}
