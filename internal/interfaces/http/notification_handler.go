package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/notification"
)

// NotificationHandler expone el agregador de notificaciones.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Get godoc
// @Summary      Notificaciones
// @Description  Vencimiento más cercano, producto que vence hoy y lotes ingresados hoy.
// @Description  Las claves sin datos se omiten; errores lista las consultas que fallaron.
// @Tags         notificaciones
// @Produce      json
// @Success      200  {object}  dto.NotificationsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/notificaciones [get]
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener notificaciones")
	}
	return c.JSON(out)
}
