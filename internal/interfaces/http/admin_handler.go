package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/usecase"
)

// AdminHandler administración del directorio de usuarios (solo rol admin).
type AdminHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateUser godoc
// @Summary      Crear usuario
// @Description  Crea la cuenta en el proveedor de identidad y la fila del directorio. Si la fila falla, la cuenta se elimina.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.UserCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateUser(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserCreatedResponse{Success: true, User: *out})
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.UserListResponse{Users: out})
}

// Deactivate godoc
// @Summary      Desactivar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        userId  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId}/deactivate [put]
func (h *AdminHandler) Deactivate(c *fiber.Ctx) error {
	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	out, err := h.uc.DeactivateUser(c.UserContext(), UserFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserStatusResponse{Success: true, Message: "Usuario desactivado correctamente", User: *out})
}

// Activate godoc
// @Summary      Activar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        userId  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId}/activate [put]
func (h *AdminHandler) Activate(c *fiber.Ctx) error {
	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	out, err := h.uc.ActivateUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserStatusResponse{Success: true, Message: "Usuario activado correctamente", User: *out})
}
