package routes

import (
	"log"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/gateway"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps are the shared infrastructure handles route registration wires into
// handlers. Everything is injected so tests can swap in doubles.
type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   usecase.SearchCache
	Gateway gateway.Client
	Logger  *log.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(deps.DB)
	health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), deps)
}
