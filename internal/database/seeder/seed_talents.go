package seeder

import (
	"context"
	"fmt"

	"talenthub/internal/database"
)

// DemoTalentSeeder inserts a small demo corpus for local development.
// Profiles are keyed by full name so reruns do not duplicate them.
type DemoTalentSeeder struct{}

func (DemoTalentSeeder) Name() string { return "demo_talents" }

type demoSkill struct {
	Category     string
	Name         string
	Proficiency  int
	Endorsements int
	Description  string
}

type demoProject struct {
	Title        string
	Description  string
	Technologies []string
}

type demoProfile struct {
	FullName    string
	Bio         string
	Major       string
	Institution string
	Location    string
	Visible     bool
	Skills      []demoSkill
	Projects    []demoProject
}

func (DemoTalentSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "full_name", "bio", "major", "institution", "location", "visible", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "profile_id", "category", "name", "proficiency", "endorsements", "description"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "projects", "id", "profile_id", "title", "description", "technologies"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range demoProfiles() {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE full_name = $1)`, p.FullName).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		var id string
		row := tx.QueryRow(ctx,
			`INSERT INTO profiles (full_name, bio, major, institution, location, visible)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			p.FullName, p.Bio, p.Major, p.Institution, p.Location, p.Visible,
		)
		if err := row.Scan(&id); err != nil {
			return err
		}

		for _, s := range p.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (profile_id, category, name, proficiency, endorsements, description)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				id, s.Category, s.Name, s.Proficiency, s.Endorsements, s.Description,
			); err != nil {
				return err
			}
		}
		for _, pr := range p.Projects {
			if _, err := tx.Exec(ctx,
				`INSERT INTO projects (profile_id, title, description, technologies)
				 VALUES ($1, $2, $3, $4)`,
				id, pr.Title, pr.Description, pr.Technologies,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func demoProfiles() []demoProfile {
	return []demoProfile{
		{
			FullName:    "Ada Lovelace",
			Bio:         "Frontend engineer who enjoys building data-heavy interfaces.",
			Major:       "Computer Science",
			Institution: "University of Indonesia",
			Location:    "Jakarta",
			Visible:     true,
			Skills: []demoSkill{
				{Category: "Frontend", Name: "React", Proficiency: 90, Endorsements: 24, Description: "Hooks, server components"},
				{Category: "Language", Name: "TypeScript", Proficiency: 85, Endorsements: 18},
			},
			Projects: []demoProject{
				{Title: "Analytics Dashboard", Description: "Realtime metrics dashboard", Technologies: []string{"React", "TypeScript", "PostgreSQL"}},
			},
		},
		{
			FullName:    "Grace Hopper",
			Bio:         "Backend and infrastructure, fond of compilers.",
			Major:       "Mathematics",
			Institution: "Bandung Institute of Technology",
			Location:    "Bandung",
			Visible:     true,
			Skills: []demoSkill{
				{Category: "Backend", Name: "Go", Proficiency: 95, Endorsements: 40, Description: "Services and tooling"},
				{Category: "Database", Name: "PostgreSQL", Proficiency: 80, Endorsements: 22},
				{Category: "DevOps", Name: "Docker", Proficiency: 75, Endorsements: 10},
			},
			Projects: []demoProject{
				{Title: "Batch Compiler", Description: "A toy compiler for a teaching language", Technologies: []string{"Go"}},
				{Title: "Job Queue", Description: "Redis-backed delayed job queue", Technologies: []string{"Go", "Redis"}},
			},
		},
		{
			FullName:    "Alan Turing",
			Bio:         "Interested in machine learning and cryptography.",
			Major:       "Computer Science",
			Institution: "Gadjah Mada University",
			Location:    "Yogyakarta",
			Visible:     true,
			Skills: []demoSkill{
				{Category: "ML", Name: "Python", Proficiency: 88, Endorsements: 30},
			},
			Projects: []demoProject{
				{Title: "Cipher Breaker", Description: "Classical cipher analysis toolkit", Technologies: []string{"Python"}},
			},
		},
		{
			FullName:    "Hidden Tester",
			Bio:         "This profile is invisible and must never surface in search.",
			Major:       "Computer Science",
			Institution: "University of Indonesia",
			Location:    "Jakarta",
			Visible:     false,
			Skills: []demoSkill{
				{Category: "Backend", Name: "Go", Proficiency: 50, Endorsements: 1},
			},
		},
	}
}
