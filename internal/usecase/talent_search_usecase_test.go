package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"talenthub/internal/repository"
	"talenthub/internal/search"

	"github.com/google/uuid"
)

type mockTalentRepo struct {
	mu       sync.Mutex
	calls    int
	profiles []repository.ProfileRow
	skills   []repository.SkillRow
	projects []repository.ProjectRow
	err      error
}

func (m *mockTalentRepo) countCall() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func (m *mockTalentRepo) VisibleProfiles(context.Context) ([]repository.ProfileRow, error) {
	if err := m.countCall(); err != nil {
		return nil, err
	}
	return m.profiles, nil
}

func (m *mockTalentRepo) AllSkills(context.Context) ([]repository.SkillRow, error) {
	if err := m.countCall(); err != nil {
		return nil, err
	}
	return m.skills, nil
}

func (m *mockTalentRepo) AllProjects(context.Context) ([]repository.ProjectRow, error) {
	if err := m.countCall(); err != nil {
		return nil, err
	}
	return m.projects, nil
}

func (m *mockTalentRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func seededRepo() *mockTalentRepo {
	adaID := uuid.New()
	graceID := uuid.New()
	return &mockTalentRepo{
		profiles: []repository.ProfileRow{
			{ID: adaID, FullName: "Ada Lovelace", Major: "Computer Science", Location: "Jakarta", Visible: true, CreatedAt: time.Now().UTC()},
			{ID: graceID, FullName: "Grace Hopper", Major: "Mathematics", Location: "Bandung", Visible: true, CreatedAt: time.Now().UTC().Add(-time.Hour)},
		},
		skills: []repository.SkillRow{
			{ID: uuid.New(), ProfileID: adaID, Name: "React", Proficiency: 90, Endorsements: 12},
			{ID: uuid.New(), ProfileID: graceID, Name: "Go", Proficiency: 95, Endorsements: 40},
		},
		projects: []repository.ProjectRow{
			{ID: uuid.New(), ProfileID: graceID, Title: "Compiler", Technologies: []string{"Go"}},
		},
	}
}

func TestTalentSearch_Success(t *testing.T) {
	uc := NewTalentSearchUsecase(seededRepo(), nil, nil, time.Minute, time.Minute)

	result, err := uc.Search(context.Background(), search.Request{Query: "react", Sort: search.SortRelevance, Page: 1, Limit: 12})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Metadata.Total != 1 {
		t.Fatalf("expected 1 match, got %d", result.Metadata.Total)
	}
	if len(result.Talents) != 1 || result.Talents[0].FullName != "Ada Lovelace" {
		t.Fatalf("unexpected talents: %+v", result.Talents)
	}
	if len(result.Talents[0].Skills) != 1 || result.Talents[0].Skills[0].Name != "React" {
		t.Fatalf("expected joined skills in projection: %+v", result.Talents[0].Skills)
	}
	if result.Filters == nil {
		t.Fatalf("expected facets in result")
	}
	if !reflect.DeepEqual(result.Filters.Majors, []string{"Computer Science", "Mathematics"}) {
		t.Fatalf("unexpected majors facet: %v", result.Filters.Majors)
	}
}

func TestTalentSearch_StoreFailureIsGeneric(t *testing.T) {
	repo := &mockTalentRepo{err: errors.New("connection refused")}
	uc := NewTalentSearchUsecase(repo, nil, nil, time.Minute, time.Minute)

	_, err := uc.Search(context.Background(), search.Request{Page: 1, Limit: 12})
	if !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}

func TestTalentSearch_FacetIndependence(t *testing.T) {
	uc := NewTalentSearchUsecase(seededRepo(), nil, nil, time.Minute, time.Minute)

	narrow, err := uc.Search(context.Background(), search.Request{Major: "Mathematics", Page: 1, Limit: 12})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	broad, err := uc.Search(context.Background(), search.Request{Page: 1, Limit: 12})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if narrow.Metadata.Total == broad.Metadata.Total {
		t.Fatalf("fixture should produce different result counts")
	}
	if !reflect.DeepEqual(narrow.Filters, broad.Filters) {
		t.Fatalf("facets must not depend on filters: %+v vs %+v", narrow.Filters, broad.Filters)
	}
}

func TestTalentSearch_CacheHitSkipsStore(t *testing.T) {
	repo := seededRepo()
	cache := newMockCache()
	uc := NewTalentSearchUsecase(repo, cache, nil, time.Minute, time.Minute)

	req := search.Request{Query: "go", Sort: search.SortRelevance, Page: 1, Limit: 12}

	first, err := uc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	callsAfterFirst := repo.callCount()

	second, err := uc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.callCount() != callsAfterFirst {
		t.Fatalf("second identical request must be served from cache")
	}
	if !reflect.DeepEqual(first.Metadata, second.Metadata) {
		t.Fatalf("cached response must match original metadata")
	}
	if len(first.Talents) != len(second.Talents) {
		t.Fatalf("cached response must match original talents")
	}
}

func TestTalentSearch_FacetsCachedAcrossRequests(t *testing.T) {
	repo := seededRepo()
	cache := newMockCache()
	uc := NewTalentSearchUsecase(repo, cache, nil, time.Minute, time.Minute)

	if _, err := uc.Search(context.Background(), search.Request{Page: 1, Limit: 12}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	facets, err := uc.Facets(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if facets == nil || len(facets.PopularSkills) == 0 {
		t.Fatalf("expected cached facets, got %+v", facets)
	}
}

func TestTalentSearch_FacetFailureDoesNotFailSearch(t *testing.T) {
	uc := NewTalentSearchUsecase(seededRepo(), nil, nil, time.Minute, time.Minute)
	uc.facetSource = func(context.Context, []search.Profile, []search.Skill, []search.Project) (*search.Facets, error) {
		return nil, errors.New("facet aggregation blip")
	}

	result, err := uc.Search(context.Background(), search.Request{Query: "react", Sort: search.SortRelevance, Page: 1, Limit: 12})
	if err != nil {
		t.Fatalf("facet failure must not fail the search: %v", err)
	}
	if result.Metadata.Total != 1 || len(result.Talents) != 1 {
		t.Fatalf("expected the ranked page despite facet failure: %+v", result.Metadata)
	}
	if result.Filters != nil {
		t.Fatalf("expected omitted facets with no cache to fall back on, got %+v", result.Filters)
	}
}

func TestTalentSearch_FacetFailureServesCachedFacets(t *testing.T) {
	repo := seededRepo()
	cache := newMockCache()
	uc := NewTalentSearchUsecase(repo, cache, nil, time.Minute, time.Minute)

	// First request succeeds and fills the facet cache.
	if _, err := uc.Search(context.Background(), search.Request{Page: 1, Limit: 12}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc.facetSource = func(context.Context, []search.Profile, []search.Skill, []search.Project) (*search.Facets, error) {
		return nil, errors.New("facet aggregation blip")
	}

	// A different page misses the response cache, forcing the failing
	// facet source.
	result, err := uc.Search(context.Background(), search.Request{Page: 2, Limit: 12})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Filters == nil {
		t.Fatalf("expected the last cached facets to be served best-effort")
	}
	if !reflect.DeepEqual(result.Filters.Majors, []string{"Computer Science", "Mathematics"}) {
		t.Fatalf("unexpected stale facets: %v", result.Filters.Majors)
	}
}

func TestTalentSearch_SingleSnapshotPerRequest(t *testing.T) {
	repo := seededRepo()
	uc := NewTalentSearchUsecase(repo, nil, nil, time.Minute, time.Minute)

	if _, err := uc.Search(context.Background(), search.Request{Page: 1, Limit: 12}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := repo.callCount(); got != 3 {
		t.Fatalf("one request must fetch one snapshot (3 collection scans), got %d", got)
	}
}

func TestTalentSearch_EmptyCorpus(t *testing.T) {
	uc := NewTalentSearchUsecase(&mockTalentRepo{}, nil, nil, time.Minute, time.Minute)

	result, err := uc.Search(context.Background(), search.Request{Page: 5, Limit: 12})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(result.Talents) != 0 {
		t.Fatalf("expected no talents, got %d", len(result.Talents))
	}
	if result.Metadata.Total != 0 || result.Metadata.TotalPages != 0 {
		t.Fatalf("unexpected metadata: %+v", result.Metadata)
	}
}
