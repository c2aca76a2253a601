package dto

import "github.com/google/uuid"

type TalentSearchResponse struct {
	Talents  []TalentResponse `json:"talents"`
	Metadata MetadataResponse `json:"metadata"`
	Filters  FiltersResponse  `json:"filters"`
}

type TalentResponse struct {
	ID          uuid.UUID         `json:"id"`
	FullName    string            `json:"fullname"`
	Bio         string            `json:"bio"`
	Major       string            `json:"major"`
	Institution string            `json:"institution"`
	Location    string            `json:"location"`
	Skills      []SkillResponse   `json:"skills"`
	Projects    []ProjectResponse `json:"projects"`
}

type SkillResponse struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  int    `json:"proficiency"`
	Endorsements int    `json:"endorsements"`
	Description  string `json:"description,omitempty"`
}

type ProjectResponse struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type MetadataResponse struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type FiltersResponse struct {
	Majors              []string `json:"majors"`
	Locations           []string `json:"locations"`
	PopularSkills       []string `json:"popularSkills"`
	PopularTechnologies []string `json:"popularTechnologies"`
}
