package app

import (
	"fmt"
	"strings"

	"jobtrack/internal/config"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())

	routes.Register(f, routes.Deps{
		Config:  cfg,
		DB:      c.DB,
		Cache:   c.Cache,
		Gateway: c.Gateway,
		Logger:  c.Logger,
	})

	a := &App{Fiber: f, Container: c}
	return a, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
