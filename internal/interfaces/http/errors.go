package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// MsgInternal mensaje genérico de los errores 500.
const MsgInternal = "Error interno del servidor"

// Códigos de error del cuerpo de respuesta.
const (
	CodeValidation    = "VALIDATION"
	CodeMissingToken  = "MISSING_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeRateLimited   = "RATE_LIMITED"
	CodeInternal      = "INTERNAL"
	CodeInvalidBody   = "INVALID_BODY"
	CodeRouteNotFound = "ROUTE_NOT_FOUND"
)

// statusOf traduce la categoría de un error de dominio a estado HTTP y código.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, CodeMissingToken
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized, CodeInvalidToken
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrForeignKey),
		errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, CodeValidation
	}
	return fiber.StatusInternalServerError, CodeInternal
}

// ErrorHandler convierte los errores devueltos por los handlers en {error, code}.
// Los errores sin categoría de dominio se registran y se responden como 500 sin detalle.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInvalidBody
			if fe.Code == fiber.StatusNotFound {
				code = CodeRouteNotFound
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: code})
		}

		status, code := statusOf(err)
		msg, ok := domain.MessageOf(err)
		if status == fiber.StatusInternalServerError || !ok {
			if status == fiber.StatusInternalServerError {
				log.Error().
					Err(err).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Interface("request_id", c.Locals(LocalRequestID)).
					Msg("error no controlado")
				msg = MsgInternal
			} else {
				msg = err.Error()
			}
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
	}
}
