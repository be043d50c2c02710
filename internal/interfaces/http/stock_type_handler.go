package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// StockTypeHandler maneja las peticiones HTTP para tipos de stock.
type StockTypeHandler struct {
	eng *engine.Engine
}

// NewStockTypeHandler construye el handler.
func NewStockTypeHandler(eng *engine.Engine) *StockTypeHandler {
	return &StockTypeHandler{eng: eng}
}

// Create godoc
// @Summary      Crear tipo de stock
// @Tags         stock-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockTypeRequest  true  "Datos del tipo de stock"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-types [post]
func (h *StockTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.StockTypeRequest
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
// @Summary      Listar tipos de stock
// @Tags         stock-types
// @Produce      json
// @Param        id            query  string  false  "Filtro por id"
// @Param        name          query  string  false  "Filtro por nombre"
// @Param        restock_only  query  bool    false  "Solo tipos que requieren reposición"
// @Success      200  {array}  dto.Row
// @Router       /api/stock-types [get]
func (h *StockTypeHandler) List(c *fiber.Ctx) error {
	name := queryPtr(c, "name")
	if name != nil && !isValidName(*name) {
		return invalidParams(c, "el nombre solo admite caracteres alfanuméricos y espacios")
	}
	rows, err := h.eng.Fetch(c.UserContext(), dto.StockTypeRequest{
		ID:   queryPtr(c, "id"),
		Name: name,
	})
	if err != nil {
		return renderError(c, err)
	}
	// Igual que el checkbox de la UI original: intersecta con la lista de reposición.
	if c.QueryBool("restock_only") {
		rows, err = h.restockSubset(c, rows)
		if err != nil {
			return renderError(c, err)
		}
	}
	return c.JSON(rows)
}

func (h *StockTypeHandler) restockSubset(c *fiber.Ctx, rows []dto.Row) ([]dto.Row, error) {
	need, err := h.eng.CheckRestock(c.UserContext())
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(need))
	for _, item := range need {
		ids[item.ID] = struct{}{}
	}
	subset := make([]dto.Row, 0, len(rows))
	for _, r := range rows {
		id, _ := r["id"].(string)
		if _, ok := ids[id]; ok {
			subset = append(subset, r)
		}
	}
	return subset, nil
}

// Update godoc
// @Summary      Actualizar tipo de stock (nombre y/o umbral)
// @Tags         stock-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del tipo de stock"
// @Param        body  body  dto.StockTypeRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-types/{id} [put]
func (h *StockTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.StockTypeRequest
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
// @Summary      Eliminar tipo de stock
// @Tags         stock-types
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tipo de stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-types/{id} [delete]
func (h *StockTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.eng.Delete(c.UserContext(), dto.StockTypeRequest{ID: &id}); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
