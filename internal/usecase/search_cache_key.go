package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"talenthub/internal/search"
)

// Case-insensitive request fields are folded before hashing so that
// requests differing only in case share a cache entry. Major, location
// and technology match case-sensitively and are hashed as-is.
type talentSearchCacheKeyInput struct {
	Query      string `json:"query"`
	Major      string `json:"major"`
	Location   string `json:"location"`
	Skill      string `json:"skill"`
	Technology string `json:"technology"`
	SortBy     string `json:"sort_by"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func foldSearchValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

func TalentSearchCacheKey(req search.Request) string {
	in := talentSearchCacheKeyInput{
		Query:      foldSearchValue(req.Query),
		Major:      req.Major,
		Location:   req.Location,
		Skill:      foldSearchValue(req.Skill),
		Technology: req.Technology,
		SortBy:     req.Sort.String(),
		Page:       req.Page,
		Limit:      req.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "talents:search:" + hex.EncodeToString(sum[:])
}

// FacetsCacheKey is a single key: facets are corpus-wide and do not
// depend on the request.
const FacetsCacheKey = "talents:facets"
