package routes

import (
	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/session"
	"jobtrack/internal/repository"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	verifier := session.NewHMACVerifier(deps.Config.Session.Secret)
	authMw := middleware.NewAuthMiddleware(verifier)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)
	timelineRepo := repository.NewPostgresTimelineRepository(deps.DB)
	savedJobRepo := repository.NewPostgresSavedJobRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	genLogRepo := repository.NewPostgresGenerationLogRepository(deps.DB)

	appUC := usecase.NewApplicationUsecase(userRepo, appRepo, timelineRepo, deps.Logger)
	searchUC := usecase.NewJobSearchUsecase(deps.Gateway, deps.Cache, deps.Logger)
	savedUC := usecase.NewSavedJobUsecase(userRepo, savedJobRepo, deps.Logger)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, deps.Logger)
	aiUC := usecase.NewAIUsecase(userRepo, profileRepo, genLogRepo, deps.Gateway, deps.Logger)

	protected := r.Group("", authMw.Middleware())

	handler.NewApplicationHandler(appUC).RegisterRoutes(protected)
	handler.NewJobHandler(searchUC, savedUC).RegisterRoutes(protected)
	handler.NewProfileHandler(profileUC).RegisterRoutes(protected)
	handler.NewAIHandler(aiUC).RegisterRoutes(protected)
}
