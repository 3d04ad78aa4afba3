package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/usecase"
)

// ReportHandler reportes del tablero.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MostMoved godoc
// @Summary      Productos más movidos
// @Description  Cantidad total ingresada agrupada por producto y usuario; top 5.
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.MostMovedDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/productos-mas-movidos [get]
func (h *ReportHandler) MostMoved(c *fiber.Ctx) error {
	rows, err := h.uc.MostMoved(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos más movidos")
	}
	return c.JSON(rows)
}

// TopUsers godoc
// @Summary      Usuarios con más lotes
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.TopUserDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/usuarios-top [get]
func (h *ReportHandler) TopUsers(c *fiber.Ctx) error {
	rows, err := h.uc.TopUsers(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener usuarios top")
	}
	return c.JSON(rows)
}
