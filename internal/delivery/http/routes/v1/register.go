package v1

import (
	"log"

	"talenthub/internal/config"
	"talenthub/internal/database"
	"talenthub/internal/delivery/http/handler"
	"talenthub/internal/infrastructure/cache"
	"talenthub/internal/repository"
	"talenthub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	talentRepo := repository.NewPostgresTalentRepository(deps.DB)

	var searchCache usecase.SearchCache
	if deps.Cache != nil {
		searchCache = deps.Cache
	}

	searchUC := usecase.NewTalentSearchUsecase(
		talentRepo,
		searchCache,
		deps.Logger,
		deps.Config.Search.CacheTTL,
		deps.Config.Search.FacetCacheTTL,
	)

	searchHandler := handler.NewTalentSearchHandler(searchUC)

	talents := r.Group("/talents")
	searchHandler.RegisterRoutes(talents)
}
