package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// LocationHandler maneja las peticiones HTTP para ubicaciones.
type LocationHandler struct {
	eng *engine.Engine
}

// NewLocationHandler construye el handler.
func NewLocationHandler(eng *engine.Engine) *LocationHandler {
	return &LocationHandler{eng: eng}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LocationRequest  true  "Datos de la ubicación"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidParams(c, "cuerpo inválido")
	}
	if req.Name != nil && !isValidName(*req.Name) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	if err := h.eng.Add(c.UserContext(), req); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Param        id    query  string  false  "Filtro por id"
// @Param        name  query  string  false  "Filtro por nombre"
// @Success      200  {array}  dto.Row
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	name := queryPtr(c, "name")
	if name != nil && !isValidName(*name) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	rows, err := h.eng.Fetch(c.UserContext(), dto.LocationRequest{
		ID:   queryPtr(c, "id"),
		Name: name,
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(rows)
}

// Update godoc
// @Summary      Renombrar ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la ubicación"
// @Param        body  body  dto.LocationRequest  true  "Nuevo nombre"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidParams(c, "cuerpo inválido")
	}
	req.ID = &id
	if req.Name != nil && !isValidName(*req.Name) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	if err := h.eng.Update(c.UserContext(), req); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar ubicación
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.eng.Delete(c.UserContext(), dto.LocationRequest{ID: &id}); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
