package usecase

import (
	"testing"

	"talenthub/internal/search"
)

func TestTalentSearchCacheKey_FoldsCaseInsensitiveFields(t *testing.T) {
	a := TalentSearchCacheKey(search.Request{Query: "React Hooks", Skill: "go", Page: 1, Limit: 12})
	b := TalentSearchCacheKey(search.Request{Query: "react   hooks", Skill: "GO", Page: 1, Limit: 12})
	if a != b {
		t.Fatalf("case and spacing of folded fields must not change the key")
	}
}

func TestTalentSearchCacheKey_CaseSensitiveFieldsKeptDistinct(t *testing.T) {
	a := TalentSearchCacheKey(search.Request{Major: "Computer Science", Page: 1, Limit: 12})
	b := TalentSearchCacheKey(search.Request{Major: "computer science", Page: 1, Limit: 12})
	if a == b {
		t.Fatalf("major matches case-sensitively, keys must differ")
	}
}

func TestTalentSearchCacheKey_PaginationChangesKey(t *testing.T) {
	a := TalentSearchCacheKey(search.Request{Page: 1, Limit: 12})
	b := TalentSearchCacheKey(search.Request{Page: 2, Limit: 12})
	if a == b {
		t.Fatalf("different pages must have different keys")
	}
}
