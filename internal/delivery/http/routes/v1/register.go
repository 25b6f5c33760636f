package v1

import (
	"log"

	"talentx/internal/config"
	"talentx/internal/database"
	"talentx/internal/delivery/http/handler"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/infrastructure/ai"
	"talentx/internal/infrastructure/cache"
	"talentx/internal/pkg/jwt"
	"talentx/internal/repository"
	"talentx/internal/usecase"
	"talentx/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 surface: repositories over db, usecases over
// repositories, handlers over usecases, all behind the JWT middleware with
// per-role route groups.
func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(db)
	profileRepo := repository.NewPostgresTalentProfileRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	invRepo := repository.NewPostgresInvitationRepository(db)

	var notifier usecase.EngagementNotifier
	if hub != nil {
		notifier = ws.NewNotifier(hub)
	}

	var rankingCache usecase.RankingCache
	if redis != nil {
		rankingCache = redis
	}

	scoring := usecase.NewScoringService(ai.NewScorer(cfg.AIScorer, logger), cfg.AIScorer.Timeout, logger)
	ranking := usecase.NewRankingUsecase(
		jobRepo, profileRepo, scoring, rankingCache,
		cfg.Redis.MatchedJobsTTL, cfg.Match.MinScore, cfg.Match.MaxResults, logger,
	)
	applications := usecase.NewApplicationUsecase(appRepo, invRepo, jobRepo, notifier, logger)
	invitations := usecase.NewInvitationUsecase(invRepo, appRepo, jobRepo, notifier, logger)

	applicationHandler := handler.NewApplicationHandler(applications)
	invitationHandler := handler.NewInvitationHandler(invitations)
	matchHandler := handler.NewMatchHandler(ranking)

	protected := r.Group("", authMw.Middleware())

	talent := protected.Group("", authMw.RequireRole(jwt.RoleTalent))
	applicationHandler.RegisterTalentRoutes(talent.Group("/applications"))
	invitationHandler.RegisterTalentRoutes(talent.Group("/invitations"))
	matchHandler.RegisterTalentRoutes(talent.Group("/jobs"))

	employer := protected.Group("", authMw.RequireRole(jwt.RoleEmployer))
	applicationHandler.RegisterEmployerRoutes(employer.Group("/applications"))
	invitationHandler.RegisterEmployerRoutes(employer.Group("/invitations"))
	matchHandler.RegisterEmployerRoutes(employer.Group("/invitations"))

	if hub != nil {
		wsHandler := ws.NewHandler(hub, logger)
		protected.Get("/ws/engagements", wsHandler.HandleEngagementsWS)
	}
}
