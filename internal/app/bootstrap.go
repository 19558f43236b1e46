package app

import (
	"context"
	"fmt"
	"strings"

	"jobswipe/internal/config"
	"jobswipe/internal/delivery/http/handler"
	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/delivery/http/routes"
	"jobswipe/internal/pkg/logger"
	"jobswipe/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Log)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, starts the websocket hub and builds the HTTP
// app. The returned cleanup stops the hub and releases connections.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Component(log, "http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Component(log, "http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["database"] = c.DB
	}
	if c.Config.Redis.Enabled() {
		checks["redis"] = c.Cache
	}

	routes.NewRegistry(routes.Handlers{
		Health: handler.NewHealthHandler(checks),
		Swipe:  handler.NewSwipeHandler(c.Swipe),
		Match:  handler.NewMatchHandler(c.Matches),
		Chat:   handler.NewChatHandler(c.Chat),
		WS:     ws.NewHandler(c.Hub, c.JWT, logger.Component(c.Log, "ws")),
		Auth:   middleware.NewAuthMiddleware(c.JWT),
	}).Register(app)
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
