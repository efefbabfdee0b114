package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/inventory"
)

// EntradaHandler maneja las peticiones HTTP de entradas de inventario.
type EntradaHandler struct {
	uc *inventory.EntradaUseCase
}

// NewEntradaHandler construye el handler.
func NewEntradaHandler(uc *inventory.EntradaUseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntradaListResponse
// @Router       /api/entradas [get]
func (h *EntradaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.EntradaListResponse{Entradas: out})
}

// GetByID godoc
// @Summary      Obtener entrada con sus detalles
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrada"
// @Success      200  {object}  dto.EntradaEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [get]
func (h *EntradaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.EntradaEnvelope{Entrada: *out})
}

// Create godoc
// @Summary      Registrar entrada
// @Description  Crea el encabezado, resuelve o crea cada producto, crea un lote por detalle y registra los detalles.
// @Description  Si un paso falla después del encabezado, el encabezado se elimina.
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntradaRequest  true  "Encabezado y detalles"
// @Success      201   {object}  dto.EntradaCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *EntradaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntradaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), IdentityFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EntradaCreatedResponse{
		Entrada: *out,
		Message: "Entrada registrada exitosamente",
	})
}

// Delete godoc
// @Summary      Eliminar entrada
// @Description  Elimina el encabezado y sus detalles; los lotes se conservan.
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Entrada eliminada correctamente"})
}

// Suggestion godoc
// @Summary      Sugerir número de acta
// @Description  Formato ACT-AAAA-NNN a partir del mayor número del año.
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        anio  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.ActaSuggestionResponse
// @Router       /api/entradas/ultimo-numero/sugerencia [get]
func (h *EntradaHandler) Suggestion(c *fiber.Ctx) error {
	year, err := queryInt(c, "anio", 0)
	if err != nil {
		return err
	}
	var s string
	if year > 0 {
		s, err = h.uc.NextActaSuggestion(c.UserContext(), year)
	} else {
		s, err = h.uc.SuggestActaNumber(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.ActaSuggestionResponse{Sugerencia: s})
}

// Acta godoc
// @Summary      Acta de entrada en PDF
// @Tags         entradas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la entrada"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id}/acta [get]
func (h *EntradaHandler) Acta(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	data, err := h.uc.ActaPDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	return sendPDF(c, fmt.Sprintf("acta-entrada-%d.pdf", id), data)
}

// SalidaHandler maneja las peticiones HTTP de salidas de inventario.
type SalidaHandler struct {
	uc *inventory.SalidaUseCase
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(uc *inventory.SalidaUseCase) *SalidaHandler {
	return &SalidaHandler{uc: uc}
}

// List godoc
// @Summary      Listar salidas
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalidaListResponse
// @Router       /api/salidas [get]
func (h *SalidaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.SalidaListResponse{Salidas: out})
}

// GetByID godoc
// @Summary      Obtener salida con sus detalles
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la salida"
// @Success      200  {object}  dto.SalidaEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [get]
func (h *SalidaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SalidaEnvelope{Salida: *out})
}

// Create godoc
// @Summary      Registrar salida
// @Description  Verifica existencia y stock de todos los lotes antes de escribir.
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalidaRequest  true  "Encabezado y detalles"
// @Success      201   {object}  dto.SalidaCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/salidas [post]
func (h *SalidaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalidaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), IdentityFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SalidaCreatedResponse{
		Salida:  *out,
		Message: "Salida registrada exitosamente",
	})
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la salida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [delete]
func (h *SalidaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Salida eliminada correctamente"})
}

// Suggestion godoc
// @Summary      Sugerir número de acta de salida
// @Description  Formato SAL-AAAA-NNN a partir del mayor número del año.
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Param        anio  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.ActaSuggestionResponse
// @Router       /api/salidas/ultimo-numero/sugerencia [get]
func (h *SalidaHandler) Suggestion(c *fiber.Ctx) error {
	year, err := queryInt(c, "anio", 0)
	if err != nil {
		return err
	}
	var s string
	if year > 0 {
		s, err = h.uc.NextActaSuggestion(c.UserContext(), year)
	} else {
		s, err = h.uc.SuggestActaNumber(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.ActaSuggestionResponse{Sugerencia: s})
}

// Acta godoc
// @Summary      Acta de salida en PDF
// @Tags         salidas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la salida"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id}/acta [get]
func (h *SalidaHandler) Acta(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	data, err := h.uc.ActaPDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	return sendPDF(c, fmt.Sprintf("acta-salida-%d.pdf", id), data)
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(data)
}
