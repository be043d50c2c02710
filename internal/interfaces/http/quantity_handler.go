package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// QuantityHandler expone los totales agregados por tipo de stock.
type QuantityHandler struct {
	eng *engine.Engine
}

// NewQuantityHandler construye el handler.
func NewQuantityHandler(eng *engine.Engine) *QuantityHandler {
	return &QuantityHandler{eng: eng}
}

// List godoc
// @Summary      Totales por tipo de stock
// @Description  Suma las cantidades de todas las instancias; los tipos sin instancias reportan cero.
// @Tags         quantities
// @Produce      json
// @Param        stock_name     query  string  false  "Filtro por tipo de stock"
// @Param        location_name  query  string  false  "Limita la suma a una ubicación"
// @Success      200  {array}  dto.Row
// @Router       /api/quantities [get]
func (h *QuantityHandler) List(c *fiber.Ctx) error {
	rows, err := h.eng.Fetch(c.UserContext(), dto.QuantityRequest{
		StockName:    queryPtr(c, "stock_name"),
		LocationName: queryPtr(c, "location_name"),
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(rows)
}

// Restock godoc
// @Summary      Tipos de stock que requieren reposición
// @Description  Un tipo requiere reposición cuando su umbral es mayor o igual al total actual.
// @Tags         quantities
// @Produce      json
// @Success      200  {array}  dto.RestockItem
// @Router       /api/quantities/restock [get]
func (h *QuantityHandler) Restock(c *fiber.Ctx) error {
	items, err := h.eng.CheckRestock(c.UserContext())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(items)
}
