package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
)

// HealthHandler estado del servicio y de la última recarga del tablero.
type HealthHandler struct {
	appName string
	store   *dashboard.Store
}

func NewHealthHandler(appName string, store *dashboard.Store) *HealthHandler {
	return &HealthHandler{appName: appName, store: store}
}

// Health GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"app":      h.appName,
		"snapshot": h.store.Status(),
	})
}
