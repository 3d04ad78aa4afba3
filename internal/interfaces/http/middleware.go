package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fruver-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status, latencia y request id.
// Debe montarse después de requestid para que el id esté en la cabecera de respuesta.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			var fe *fiber.Error
			if errors.As(chainErr, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = httpLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = httpLog.Warn()
		default:
			ev = httpLog.Info()
		}
		if cause, ok := c.Locals(localErr).(error); ok {
			ev = ev.Err(cause)
		} else if chainErr != nil {
			ev = ev.Err(chainErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("petición")

		return chainErr
	}
}

// NotFound responde en texto plano a cualquier ruta no registrada.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Ruta no encontrada")
}
