package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// statusOf traduce el Kind de un error de dominio a status HTTP.
// Conflict (email duplicado) se expone como 400.
func statusOf(k domain.Kind) int {
	switch k {
	case domain.KindValidation, domain.KindConflict:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindStale:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde con el cuerpo {code, mensaje} correspondiente a err.
// Los errores internos se registran con la causa y al cliente solo llega el mensaje.
func writeError(c *fiber.Ctx, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		de = domain.Internal("Error del servidor", err)
	}
	status := statusOf(de.Kind)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: de.Code, Mensaje: de.Message})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Mensaje: "cuerpo inválido"})
}

// ErrorHandler manejador de Fiber para errores no capturados por los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return NotFound(c)
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Mensaje: fe.Message})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Mensaje: "Error del servidor: " + err.Error(),
	})
}

// NotFound respuesta para rutas inexistentes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ROUTE_NOT_FOUND", Mensaje: "Ruta no encontrada"})
}
