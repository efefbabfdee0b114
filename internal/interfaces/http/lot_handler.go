package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
)

// LotHandler maneja las peticiones HTTP de lotes.
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/lotes [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.LotListResponse{Lotes: out})
}

// ListByProduct godoc
// @Summary      Lotes de un producto
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        idProducto  path  int  true  "ID del producto"
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/lotes/producto/{idProducto} [get]
func (h *LotHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "idProducto")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.LotListResponse{Lotes: out})
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LotEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.LotEnvelope{Lote: *out})
}

// Create godoc
// @Summary      Crear lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), IdentityFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LotEnvelope{Lote: *out})
}

// Update godoc
// @Summary      Actualizar lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LotEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateLotRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.LotEnvelope{Lote: *out})
}

// Delete godoc
// @Summary      Eliminar lote
// @Description  Falla si el lote ya tuvo movimientos de stock.
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Lote eliminado correctamente"})
}

// Expiring godoc
// @Summary      Lotes por vencer
// @Description  Lotes disponibles que vencen entre hoy y hoy + dias, ordenados por vencimiento.
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días"  default(30)
// @Success      200   {object}  dto.ExpiringLotsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lotes/alertas/vencimientos [get]
func (h *LotHandler) Expiring(c *fiber.Ctx) error {
	days, err := queryInt(c, "dias", inventory.ExpiringWindowDays)
	if err != nil {
		return err
	}
	out, err := h.uc.ListExpiring(c.UserContext(), days)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExpiringLotsResponse{Lotes: out, Total: len(out)})
}
