package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain"
)

// Códigos de error de la API.
const (
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidBody      = "INVALID_BODY"
	CodeAggregateFailure = "AGGREGATE_FAILURE"
)

// localErr clave de Locals donde queda la causa para el log de la petición.
const localErr = "handlerError"

// respondError traduce err a status + dto.ErrorResponse. message es el texto de la operación.
func respondError(c *fiber.Ctx, err error, message string) error {
	c.Locals(localErr, err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: message})
	case errors.Is(err, domain.ErrAggregateFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeAggregateFailure, Message: message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeStoreUnavailable, Message: message})
	}
}

// invalidBody responde 400 para un cuerpo que no se pudo decodificar.
func invalidBody(c *fiber.Ctx, err error) error {
	return respondError(c, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err), "cuerpo inválido")
}

// pathParam devuelve el parámetro de ruta decodificado (%20 -> espacio).
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
