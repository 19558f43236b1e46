package handler

import (
	"context"
	"fmt"
	"time"

	"jobswipe/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"
)

// Pinger is any dependency whose reachability the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler takes the dependencies to probe keyed by name. Nil
// entries are skipped.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	out := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			out[name] = p
		}
	}
	return &HealthHandler{checks: out}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

// Check probes every dependency concurrently and answers 503 if any is down.
// A failed probe does not cancel the others so each one is reported.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	down := make([]bool, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			if err := h.checks[name].Ping(ctx); err != nil {
				down[i] = true
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	err := g.Wait()

	deps := make(map[string]string, len(names))
	for i, name := range names {
		deps[name] = "up"
		if down[i] {
			deps[name] = "down"
		}
	}

	data := fiber.Map{"dependencies": deps}
	if err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
