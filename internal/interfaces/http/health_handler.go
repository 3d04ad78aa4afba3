package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger comprueba la conexión con la base de datos. Lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler rutas de bienvenida y salud.
type HealthHandler struct {
	db      Pinger
	service string
	timeout time.Duration
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger, service string) *HealthHandler {
	return &HealthHandler{db: db, service: service, timeout: 2 * time.Second}
}

// Welcome texto de bienvenida en la raíz.
func (h *HealthHandler) Welcome(c *fiber.Ctx) error {
	return c.SendString("Bienvenido a la API de Fruver")
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.db == nil {
		return c.JSON(fiber.Map{"status": "ok", "service": h.service})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		c.Locals(localErr, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded", "service": h.service, "database": "unavailable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service, "database": "ok"})
}
