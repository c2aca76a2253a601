package search

import (
	"strconv"
	"strings"
)

type SortMode int

const (
	SortDefault SortMode = iota
	SortRelevance
	SortName
	SortSkills
	SortProjects
	SortEndorsements
)

func ParseSortMode(s string) SortMode {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "relevance":
		return SortRelevance
	case "name":
		return SortName
	case "skills":
		return SortSkills
	case "projects":
		return SortProjects
	case "endorsements":
		return SortEndorsements
	default:
		return SortDefault
	}
}

func (m SortMode) String() string {
	switch m {
	case SortRelevance:
		return "relevance"
	case SortName:
		return "name"
	case SortSkills:
		return "skills"
	case SortProjects:
		return "projects"
	case SortEndorsements:
		return "endorsements"
	default:
		return "default"
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

type Request struct {
	Query      string
	Major      string
	Location   string
	Skill      string
	Technology string
	Sort       SortMode
	Page       int
	Limit      int
}

// RawRequest holds request parameters as received on the wire, before
// any validation. Parsing is permissive: malformed numbers and unknown
// sort modes fall back to defaults rather than failing the request.
type RawRequest struct {
	Query      string
	Major      string
	Location   string
	Skill      string
	Technology string
	SortBy     string
	Page       string
	Limit      string
}

func ParseRequest(raw RawRequest) Request {
	return Request{
		Query:      strings.TrimSpace(raw.Query),
		Major:      strings.TrimSpace(raw.Major),
		Location:   strings.TrimSpace(raw.Location),
		Skill:      strings.TrimSpace(raw.Skill),
		Technology: strings.TrimSpace(raw.Technology),
		Sort:       ParseSortMode(raw.SortBy),
		Page:       parsePositiveInt(raw.Page, DefaultPage),
		Limit:      parsePositiveInt(raw.Limit, DefaultLimit),
	}
}

func parsePositiveInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
