package app

import (
	"fmt"
	"strings"

	"talentx/internal/config"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container and the fiber app, registers middleware and
// routes, and starts the event hub. The returned cleanup closes the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(container.Logger)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(cfg, container.DB, container.Cache, container.Hub, container.Logger)
	registry.Register(f)

	go container.Hub.Run()

	return &App{Fiber: f, Container: container}, container.Close, nil
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
