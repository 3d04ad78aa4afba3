package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/usecase"
)

// InventoryHandler maneja las consultas del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Description  Todos los lotes con su usuario, producto y estado de vencimiento.
// @Tags         inventario
// @Produce      json
// @Success      200  {array}   dto.InventoryRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener inventario")
	}
	return c.JSON(rows)
}

// Search godoc
// @Summary      Buscar en el inventario
// @Description  Lotes cuyo código o nombre de producto contiene el término (sin distinguir mayúsculas).
// @Tags         inventario
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Success      200  {array}   dto.InventoryRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/buscar [get]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	rows, err := h.uc.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err, "Error al obtener inventario")
	}
	return c.JSON(rows)
}

// Export godoc
// @Summary      Exportar inventario
// @Tags         inventario
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/exportar [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	content, contentType, filename, err := h.uc.Export(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al exportar inventario")
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
