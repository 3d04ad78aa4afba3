package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/application/usecase"
	"github.com/jhoicas/fruver-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Añadir producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Error al añadir el producto.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetIDByName godoc
// @Summary      Obtener ID de producto por nombre
// @Tags         productos
// @Produce      json
// @Param        nombre  path  string  true  "Nombre exacto del producto"
// @Success      200  {object}  dto.ProductIDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/id/{nombre} [get]
func (h *ProductHandler) GetIDByName(c *fiber.Ctx) error {
	out, err := h.uc.GetIDByName(c.UserContext(), pathParam(c, "nombre"))
	if err != nil {
		msg := "Error al obtener el ID del producto."
		if errors.Is(err, domain.ErrNotFound) {
			msg = "Producto no encontrado."
		}
		return respondError(c, err, msg)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos.")
	}
	return c.JSON(out)
}

// ListRecent godoc
// @Summary      Productos recientes
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/recientes [get]
func (h *ProductHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al obtener productos.")
	}
	return c.JSON(out)
}
