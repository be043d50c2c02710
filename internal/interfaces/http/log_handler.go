package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// LogHandler expone la bitácora de actividad, de solo lectura.
type LogHandler struct {
	eng *engine.Engine
}

// NewLogHandler construye el handler.
func NewLogHandler(eng *engine.Engine) *LogHandler {
	return &LogHandler{eng: eng}
}

// List godoc
// @Summary      Consultar bitácora de actividad
// @Tags         logs
// @Produce      json
// @Param        id             query  string  false  "Filtro por id de entrada"
// @Param        instance_id    query  string  false  "Filtro por instancia"
// @Param        stock_name     query  string  false  "Filtro por tipo de stock"
// @Param        location_name  query  string  false  "Filtro por ubicación"
// @Param        activity_type  query  string  false  "Created, Updated o Removed"
// @Success      200  {array}  dto.Row
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	rows, err := h.eng.Fetch(c.UserContext(), dto.LogRequest{
		ID:           queryPtr(c, "id"),
		InstanceID:   queryPtr(c, "instance_id"),
		StockName:    queryPtr(c, "stock_name"),
		LocationName: queryPtr(c, "location_name"),
		ActivityType: queryPtr(c, "activity_type"),
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(rows)
}
