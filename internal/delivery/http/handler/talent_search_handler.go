package handler

import (
	"talenthub/internal/delivery/http/dto"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/pkg/response"
	"talenthub/internal/search"
	"talenthub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TalentSearchHandler struct {
	uc usecase.TalentSearchUsecase
}

func NewTalentSearchHandler(uc usecase.TalentSearchUsecase) *TalentSearchHandler {
	return &TalentSearchHandler{uc: uc}
}

func (h *TalentSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/search", h.HandleSearch)
}

// HandleSearch parses the raw query permissively (malformed page and
// limit fall back to defaults, never a 400) and runs the search.
func (h *TalentSearchHandler) HandleSearch(c fiber.Ctx) error {
	req := search.ParseRequest(search.RawRequest{
		Query:      c.Query("q"),
		Major:      c.Query("major"),
		Location:   c.Query("location"),
		Skill:      c.Query("skill"),
		Technology: c.Query("technology"),
		SortBy:     c.Query("sortBy"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	})

	result, err := h.uc.Search(c.Context(), req)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Search failed", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "success", toSearchResponse(result))
}

func toSearchResponse(result usecase.TalentSearchResult) dto.TalentSearchResponse {
	talents := make([]dto.TalentResponse, 0, len(result.Talents))
	for _, t := range result.Talents {
		skills := make([]dto.SkillResponse, 0, len(t.Skills))
		for _, s := range t.Skills {
			skills = append(skills, dto.SkillResponse{
				Name:         s.Name,
				Category:     s.Category,
				Proficiency:  s.Proficiency,
				Endorsements: s.Endorsements,
				Description:  s.Description,
			})
		}
		projects := make([]dto.ProjectResponse, 0, len(t.Projects))
		for _, p := range t.Projects {
			projects = append(projects, dto.ProjectResponse{
				Title:        p.Title,
				Description:  p.Description,
				Technologies: p.Technologies,
			})
		}
		talents = append(talents, dto.TalentResponse{
			ID:          t.ID,
			FullName:    t.FullName,
			Bio:         t.Bio,
			Major:       t.Major,
			Institution: t.Institution,
			Location:    t.Location,
			Skills:      skills,
			Projects:    projects,
		})
	}

	filters := dto.FiltersResponse{
		Majors:              []string{},
		Locations:           []string{},
		PopularSkills:       []string{},
		PopularTechnologies: []string{},
	}
	if result.Filters != nil {
		filters = dto.FiltersResponse{
			Majors:              result.Filters.Majors,
			Locations:           result.Filters.Locations,
			PopularSkills:       result.Filters.PopularSkills,
			PopularTechnologies: result.Filters.PopularTechnologies,
		}
	}

	return dto.TalentSearchResponse{
		Talents: talents,
		Metadata: dto.MetadataResponse{
			Total:       result.Metadata.Total,
			Page:        result.Metadata.Page,
			Limit:       result.Metadata.Limit,
			TotalPages:  result.Metadata.TotalPages,
			HasNextPage: result.Metadata.HasNextPage,
			HasPrevPage: result.Metadata.HasPrevPage,
		},
		Filters: filters,
	}
}
