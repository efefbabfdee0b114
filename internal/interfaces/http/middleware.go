package http

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalIdentity  = "identity"
	LocalUser      = "user"
	LocalRequestID = "requestid"
)

// Authenticator valida bearer tokens y autoriza administradores (implementado por auth.Gateway).
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	AuthorizeAdmin(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}

// RequestObserver recibe la duración de cada petición (implementado por pkg/metrics).
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RateLimiter contador de ventana fija (implementado por infrastructure/redis).
type RateLimiter interface {
	Allow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// AuthMiddleware valida el Bearer Token contra el proveedor y deja la identidad en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		identity, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// RequireAdmin exige rol admin en el directorio. Debe ir después de AuthMiddleware.
func RequireAdmin(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authn.AuthorizeAdmin(c.UserContext(), IdentityFrom(c))
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// IdentityFrom devuelve la identidad autenticada o nil.
func IdentityFrom(c *fiber.Ctx) *entity.Identity {
	identity, _ := c.Locals(LocalIdentity).(*entity.Identity)
	return identity
}

// UserFrom devuelve el administrador autorizado por RequireAdmin o nil.
func UserFrom(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(LocalUser).(*entity.User)
	return user
}

// RequestLogger registra cada petición con zerolog y alimenta las métricas HTTP.
// Los errores se resuelven aquí con el ErrorHandler de la app para conocer el estado final.
func RequestLogger(log *logger.Logger, observer RequestObserver) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if observer != nil {
			observer.ObserveRequest(c.Method(), route, status, elapsed)
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.IP()).
			Interface("request_id", c.Locals(LocalRequestID)).
			Msg("petición HTTP")
		return nil
	}
}

// RateLimit limita las peticiones por IP en ventanas de un minuto. Con limiter nil o perMinute<=0
// no limita. Si el backend falla la petición se deja pasar.
func RateLimit(limiter RateLimiter, scope string, perMinute int, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		if limiter == nil || perMinute <= 0 {
			return c.Next()
		}
		allowed, count, err := limiter.Allow(c.UserContext(), fmt.Sprintf("%s:%s", scope, c.IP()), int64(perMinute), time.Minute)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("límite de peticiones no disponible")
			return c.Next()
		}
		remaining := int64(perMinute) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, "60")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "Demasiadas solicitudes, intenta de nuevo en un minuto",
				Code:  CodeRateLimited,
			})
		}
		return c.Next()
	}
}
