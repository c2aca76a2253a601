package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"talenthub/internal/repository"
	"talenthub/internal/search"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrSearchFailed is the only error the search path surfaces to
// callers; the underlying store failure is logged server-side.
var ErrSearchFailed = errors.New("search failed")

type TalentSearchUsecase interface {
	Search(ctx context.Context, req search.Request) (TalentSearchResult, error)
	Facets(ctx context.Context) (*search.Facets, error)
}

type TalentSearchResult struct {
	Talents  []TalentItem
	Metadata search.Metadata
	Filters  *search.Facets
}

// TalentItem is the public-safe projection of a candidate: the
// visibility flag never leaves the engine.
type TalentItem struct {
	ID          uuid.UUID
	FullName    string
	Bio         string
	Major       string
	Institution string
	Location    string
	Skills      []TalentSkill
	Projects    []TalentProject
}

type TalentSkill struct {
	Name         string
	Category     string
	Proficiency  int
	Endorsements int
	Description  string
}

type TalentProject struct {
	Title        string
	Description  string
	Technologies []string
}

type TalentSearch struct {
	repo     repository.TalentRepository
	cache    SearchCache
	logger   *log.Logger
	cacheTTL time.Duration
	facetTTL time.Duration

	// facetSource produces the corpus-wide facets for one request.
	// Swappable so a facet failure can be exercised independently of
	// the ranking pipeline.
	facetSource func(ctx context.Context, profiles []search.Profile, skills []search.Skill, projects []search.Project) (*search.Facets, error)
}

func NewTalentSearchUsecase(repo repository.TalentRepository, cache SearchCache, logger *log.Logger, cacheTTL, facetTTL time.Duration) *TalentSearch {
	u := &TalentSearch{repo: repo, cache: cache, logger: logger, cacheTTL: cacheTTL, facetTTL: facetTTL}
	u.facetSource = u.facetsFromSnapshot
	return u
}

// Search fetches one corpus snapshot and runs the ranking pipeline and
// the facet aggregation over it as independent tasks. A facet failure
// degrades to the last cached facets, or to a response without
// filters; only a snapshot failure fails the whole request.
func (u *TalentSearch) Search(ctx context.Context, req search.Request) (TalentSearchResult, error) {
	cacheKey := TalentSearchCacheKey(req)
	if u.cache != nil {
		var cached TalentSearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Search] Cache HIT: %s", cacheKey)
			return cached, nil
		}
	}

	profiles, skills, projects, err := u.snapshot(ctx)
	if err != nil {
		u.logf("[Search] corpus fetch failed: %v", err)
		return TalentSearchResult{}, ErrSearchFailed
	}

	var (
		page      []search.Candidate
		md        search.Metadata
		facets    *search.Facets
		facetsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		page, md = search.Execute(req, profiles, skills, projects)
	}()
	go func() {
		defer wg.Done()
		facets, facetsErr = u.facetSource(ctx, profiles, skills, projects)
	}()
	wg.Wait()

	if facetsErr != nil {
		u.logf("[Facets] aggregation failed, serving cached facets best-effort: %v", facetsErr)
		facets = u.cachedFacets(ctx)
	}

	result := TalentSearchResult{
		Talents:  projectCandidates(page),
		Metadata: md,
		Filters:  facets,
	}

	// Only complete responses are cached; a degraded one without
	// facets would otherwise be served until the TTL expires.
	if u.cache != nil && facets != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL)
	}

	return result, nil
}

// Facets aggregates the corpus-wide filter domains, independent of any
// active query or filter. The result is cached under a single key.
func (u *TalentSearch) Facets(ctx context.Context) (*search.Facets, error) {
	if cached := u.cachedFacets(ctx); cached != nil {
		return cached, nil
	}

	profiles, skills, projects, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return u.facetsFromSnapshot(ctx, profiles, skills, projects)
}

func (u *TalentSearch) facetsFromSnapshot(ctx context.Context, profiles []search.Profile, skills []search.Skill, projects []search.Project) (*search.Facets, error) {
	if cached := u.cachedFacets(ctx); cached != nil {
		return cached, nil
	}

	facets := search.AggregateFacets(profiles, skills, projects)
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, FacetsCacheKey, facets, u.facetTTL)
	}
	return &facets, nil
}

// cachedFacets reads the facet cache best-effort: a miss or a cache
// error both return nil.
func (u *TalentSearch) cachedFacets(ctx context.Context) *search.Facets {
	if u.cache == nil {
		return nil
	}
	var cached search.Facets
	hit, err := u.cache.GetJSON(ctx, FacetsCacheKey, &cached)
	if err != nil || !hit {
		return nil
	}
	return &cached
}

// snapshot fetches the three corpus collections concurrently; any
// fetch failure cancels the others.
func (u *TalentSearch) snapshot(ctx context.Context) ([]search.Profile, []search.Skill, []search.Project, error) {
	var (
		profileRows []repository.ProfileRow
		skillRows   []repository.SkillRow
		projectRows []repository.ProjectRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profileRows, err = u.repo.VisibleProfiles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		skillRows, err = u.repo.AllSkills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projectRows, err = u.repo.AllProjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	profiles := make([]search.Profile, 0, len(profileRows))
	for _, p := range profileRows {
		profiles = append(profiles, search.Profile{
			ID:          p.ID,
			FullName:    p.FullName,
			Bio:         p.Bio,
			Major:       p.Major,
			Institution: p.Institution,
			Location:    p.Location,
			Visible:     p.Visible,
			CreatedAt:   p.CreatedAt,
		})
	}

	skills := make([]search.Skill, 0, len(skillRows))
	for _, s := range skillRows {
		skills = append(skills, search.Skill{
			ID:           s.ID,
			ProfileID:    s.ProfileID,
			Category:     s.Category,
			Name:         s.Name,
			Proficiency:  s.Proficiency,
			Endorsements: s.Endorsements,
			Description:  s.Description,
		})
	}

	projects := make([]search.Project, 0, len(projectRows))
	for _, p := range projectRows {
		projects = append(projects, search.Project{
			ID:           p.ID,
			ProfileID:    p.ProfileID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
		})
	}

	return profiles, skills, projects, nil
}

func projectCandidates(page []search.Candidate) []TalentItem {
	out := make([]TalentItem, 0, len(page))
	for _, c := range page {
		item := TalentItem{
			ID:          c.Profile.ID,
			FullName:    c.Profile.FullName,
			Bio:         c.Profile.Bio,
			Major:       c.Profile.Major,
			Institution: c.Profile.Institution,
			Location:    c.Profile.Location,
			Skills:      make([]TalentSkill, 0, len(c.Skills)),
			Projects:    make([]TalentProject, 0, len(c.Projects)),
		}
		for _, s := range c.Skills {
			item.Skills = append(item.Skills, TalentSkill{
				Name:         s.Name,
				Category:     s.Category,
				Proficiency:  s.Proficiency,
				Endorsements: s.Endorsements,
				Description:  s.Description,
			})
		}
		for _, p := range c.Projects {
			item.Projects = append(item.Projects, TalentProject{
				Title:        p.Title,
				Description:  p.Description,
				Technologies: p.Technologies,
			})
		}
		out = append(out, item)
	}
	return out
}

func (u *TalentSearch) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
