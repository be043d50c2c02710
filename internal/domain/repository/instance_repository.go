package repository

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// InstanceFilter filtros opcionales para listar instancias de inventario.
// Los nombres filtran sobre los JOIN con stock_types y locations.
type InstanceFilter struct {
	ID           *string
	StockName    *string
	LocationName *string
}

// InstanceRepository define el puerto de persistencia para InventoryInstance.
// Usado dentro de transacciones para garantizar la atomicidad mutación+bitácora.
type InstanceRepository interface {
	Create(ctx context.Context, inst *entity.InventoryInstance) error
	// GetByID devuelve la vista con nombres resueltos; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.InstanceView, error)
	List(ctx context.Context, f InstanceFilter) ([]*entity.InstanceView, error)
	Update(ctx context.Context, inst *entity.InventoryInstance) error
	Delete(ctx context.Context, id string) error
	// CountByStockType y CountByLocation soportan el chequeo referencial
	// previo a borrar un StockType o Location.
	CountByStockType(ctx context.Context, stockTypeID string) (int, error)
	CountByLocation(ctx context.Context, locationID string) (int, error)
}
