package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/usecase"
)

// AlertHandler expone los listados de vencimiento y bajo stock.
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// NearExpiry godoc
// @Summary      Productos por vencer
// @Tags         alertas
// @Produce      json
// @Success      200  {array}   dto.NearExpiryRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/por-vencer [get]
func (h *AlertHandler) NearExpiry(c *fiber.Ctx) error {
	rows, err := h.uc.NearExpiry(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos por vencer")
	}
	return c.JSON(rows)
}

// Expired godoc
// @Summary      Productos vencidos
// @Tags         alertas
// @Produce      json
// @Success      200  {array}   dto.ExpiredRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/vencidos [get]
func (h *AlertHandler) Expired(c *fiber.Ctx) error {
	rows, err := h.uc.Expired(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos vencidos")
	}
	return c.JSON(rows)
}

// RecentExpired godoc
// @Summary      Productos vencidos recientes
// @Tags         alertas
// @Produce      json
// @Success      200  {array}   dto.ExpiredRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/vencidos/recientes [get]
func (h *AlertHandler) RecentExpired(c *fiber.Ctx) error {
	rows, err := h.uc.RecentExpired(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos vencidos")
	}
	return c.JSON(rows)
}

// LowStock godoc
// @Summary      Productos con bajo stock
// @Tags         alertas
// @Produce      json
// @Success      200  {array}   dto.LowStockRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/bajo-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos con bajo stock")
	}
	return c.JSON(rows)
}

// LowStockSearch godoc
// @Summary      Buscar productos con bajo stock
// @Description  Filtra por nombre de producto o de usuario.
// @Tags         alertas
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Success      200  {array}   dto.LowStockRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/bajo-stock/buscar [get]
func (h *AlertHandler) LowStockSearch(c *fiber.Ctx) error {
	rows, err := h.uc.LowStockSearch(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err, "Error al obtener productos con bajo stock")
	}
	return c.JSON(rows)
}
