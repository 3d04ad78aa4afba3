package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/application/usecase"
)

// LotHandler maneja alta, cambio y baja de lotes.
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Añadir lote
// @Description  Si no se envía codigo, se asigna el siguiente de la secuencia.
// @Tags         lotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.CreateLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Error al añadir el lote.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Description  Cambia producto y cantidad. Un código inexistente también responde éxito.
// @Tags         lotes
// @Accept       json
// @Produce      json
// @Param        codigoLote  path  string                true  "Código del lote"
// @Param        body        body  dto.UpdateLotRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.AckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/lotes/{codigoLote} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), pathParam(c, "codigoLote"), in)
	if err != nil {
		return respondError(c, err, "Error al actualizar el lote.")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         lotes
// @Produce      json
// @Param        codigoLote  path  string  true  "Código del lote"
// @Success      200   {object}  dto.AckResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/lotes/{codigoLote} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), pathParam(c, "codigoLote"))
	if err != nil {
		return respondError(c, err, "Error al eliminar el lote.")
	}
	return c.JSON(out)
}

// ListRecent godoc
// @Summary      Lotes recientes
// @Tags         lotes
// @Produce      json
// @Success      200  {array}   dto.RecentLotDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/lotes/recientes [get]
func (h *LotHandler) ListRecent(c *fiber.Ctx) error {
	rows, err := h.uc.ListRecent(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener lotes recientes")
	}
	return c.JSON(rows)
}
