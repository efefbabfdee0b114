package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
)

// AuthHandler maneja verificación de sesión, perfil y emisión de tokens.
type AuthHandler struct {
	gw *auth.Gateway
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(gw *auth.Gateway) *AuthHandler {
	return &AuthHandler{gw: gw}
}

// Verify godoc
// @Summary      Verificar token
// @Description  Valida el token y devuelve el usuario del directorio con el email del proveedor.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerifyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	u, err := h.gw.Verify(c.UserContext(), IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.VerifyResponse{User: dto.FromVerified(u)})
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u, err := h.gw.Profile(c.UserContext(), IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProfileResponse{Usuario: dto.FromUser(u)})
}

// Token godoc
// @Summary      Obtener access token
// @Description  Inicia sesión con email y password en el proveedor de identidad. Solo disponible con AUTH_TOKEN_ENDPOINT_ENABLED.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "email y password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	session, err := h.gw.SignIn(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		User:        dto.TokenUser{ID: session.Identity.Subject, Email: session.Identity.Email},
	})
}
