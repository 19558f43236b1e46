package routes

import (
	"jobswipe/internal/delivery/http/handler"
	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	swipe  *handler.SwipeHandler
	match  *handler.MatchHandler
	chat   *handler.ChatHandler
	ws     *ws.Handler
	auth   *middleware.AuthMiddleware
}

type Handlers struct {
	Health *handler.HealthHandler
	Swipe  *handler.SwipeHandler
	Match  *handler.MatchHandler
	Chat   *handler.ChatHandler
	WS     *ws.Handler
	Auth   *middleware.AuthMiddleware
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{
		health: h.Health,
		swipe:  h.Swipe,
		match:  h.Match,
		chat:   h.Chat,
		ws:     h.WS,
		auth:   h.Auth,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		app.Get("/ws", r.ws.Handle)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	if r.auth == nil {
		return
	}
	v1 := app.Group("/api/v1", r.auth.Middleware())

	if r.swipe != nil {
		r.swipe.RegisterRoutes(v1)
	}
	if r.match != nil {
		r.match.RegisterRoutes(v1)
	}
	if r.chat != nil {
		r.chat.RegisterRoutes(v1)
	}
}
