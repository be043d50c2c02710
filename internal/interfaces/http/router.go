package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine    *engine.Engine
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stockTypeHandler := NewStockTypeHandler(deps.Engine)
	locationHandler := NewLocationHandler(deps.Engine)
	inventoryHandler := NewInventoryHandler(deps.Engine)
	quantityHandler := NewQuantityHandler(deps.Engine)
	logHandler := NewLogHandler(deps.Engine)

	// Lecturas (público)
	api.Get("/stock-types", stockTypeHandler.List)
	api.Get("/locations", locationHandler.List)
	api.Get("/inventory", inventoryHandler.List)
	api.Get("/quantities", quantityHandler.List)
	api.Get("/quantities/restock", quantityHandler.Restock)
	api.Get("/logs", logHandler.List)

	// Mutaciones (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	stockTypes := protected.Group("/stock-types")
	stockTypes.Post("/", stockTypeHandler.Create)
	stockTypes.Put("/:id", stockTypeHandler.Update)
	stockTypes.Delete("/:id", stockTypeHandler.Delete)

	locations := protected.Group("/locations")
	locations.Post("/", locationHandler.Create)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	invGroup := protected.Group("/inventory")
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)
}
