package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// InventoryHandler maneja las peticiones HTTP para instancias de inventario.
type InventoryHandler struct {
	eng *engine.Engine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(eng *engine.Engine) *InventoryHandler {
	return &InventoryHandler{eng: eng}
}

// Create godoc
// @Summary      Registrar instancia de inventario
// @Description  Crea la instancia y su entrada de bitácora en una sola transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InstanceRequest  true  "Tipo de stock, ubicación y cantidad"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.InstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidParams(c, "cuerpo inválido")
	}
	if req.StockName != nil && !isValidName(*req.StockName) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	if req.LocationName != nil && !isValidName(*req.LocationName) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	if err := h.eng.Add(c.UserContext(), req); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar instancias de inventario
// @Tags         inventory
// @Produce      json
// @Param        id             query  string  false  "Filtro por id"
// @Param        stock_name     query  string  false  "Filtro por tipo de stock"
// @Param        location_name  query  string  false  "Filtro por ubicación"
// @Success      200  {array}  dto.Row
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.eng.Fetch(c.UserContext(), dto.InstanceRequest{
		ID:           queryPtr(c, "id"),
		StockName:    queryPtr(c, "stock_name"),
		LocationName: queryPtr(c, "location_name"),
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(rows)
}

// Update godoc
// @Summary      Mover instancia y/o ajustar cantidad
// @Description  Registra la entrada de bitácora correspondiente en la misma transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la instancia"
// @Param        body  body  dto.InstanceRequest  true  "Nueva ubicación y/o cantidad"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.InstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidParams(c, "cuerpo inválido")
	}
	req.ID = &id
	if req.LocationName != nil && !isValidName(*req.LocationName) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	if err := h.eng.Update(c.UserContext(), req); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar instancia de inventario
// @Description  La salida queda registrada en la bitácora dentro de la misma transacción.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la instancia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.eng.Delete(c.UserContext(), dto.InstanceRequest{ID: &id}); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
