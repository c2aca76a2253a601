package repository

import (
	"context"
	"time"

	"talenthub/internal/database"

	"github.com/google/uuid"
)

// TalentRepository is the corpus store for the search engine: visible
// profiles plus the flat skill and project collections. Joining is the
// engine's job, so the queries here stay simple scans.
type TalentRepository interface {
	VisibleProfiles(ctx context.Context) ([]ProfileRow, error)
	AllSkills(ctx context.Context) ([]SkillRow, error)
	AllProjects(ctx context.Context) ([]ProjectRow, error)
}

type ProfileRow struct {
	ID          uuid.UUID
	FullName    string
	Bio         string
	Major       string
	Institution string
	Location    string
	Visible     bool
	CreatedAt   time.Time
}

type SkillRow struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Category     string
	Name         string
	Proficiency  int
	Endorsements int
	Description  string
}

type ProjectRow struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Title        string
	Description  string
	Technologies []string
}

type PostgresTalentRepository struct {
	db database.DB
}

func NewPostgresTalentRepository(db database.DB) *PostgresTalentRepository {
	return &PostgresTalentRepository{db: db}
}

func (r *PostgresTalentRepository) VisibleProfiles(ctx context.Context) ([]ProfileRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(full_name, ''), COALESCE(bio, ''), COALESCE(major, ''),
		        COALESCE(institution, ''), COALESCE(location, ''), visible, created_at
		 FROM profiles
		 WHERE visible = TRUE
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProfileRow, 0)
	for rows.Next() {
		var p ProfileRow
		if err := rows.Scan(&p.ID, &p.FullName, &p.Bio, &p.Major, &p.Institution, &p.Location, &p.Visible, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTalentRepository) AllSkills(ctx context.Context) ([]SkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, COALESCE(category, ''), COALESCE(name, ''),
		        COALESCE(proficiency, 0), COALESCE(endorsements, 0), COALESCE(description, '')
		 FROM skills
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillRow, 0)
	for rows.Next() {
		var s SkillRow
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Category, &s.Name, &s.Proficiency, &s.Endorsements, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTalentRepository) AllProjects(ctx context.Context) ([]ProjectRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, COALESCE(title, ''), COALESCE(description, ''),
		        COALESCE(technologies, '{}')
		 FROM projects
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProjectRow, 0)
	for rows.Next() {
		var p ProjectRow
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.Technologies); err != nil {
			return nil, err
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
