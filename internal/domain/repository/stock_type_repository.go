package repository

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// StockTypeFilter filtros opcionales para listar tipos de stock.
// Un campo nil significa "sin restricción sobre ese campo".
type StockTypeFilter struct {
	ID   *string
	Name *string
}

// StockTypeRepository define el puerto de persistencia para StockType (DIP).
type StockTypeRepository interface {
	Create(ctx context.Context, st *entity.StockType) error
	GetByID(ctx context.Context, id string) (*entity.StockType, error)
	// GetByName busca por nombre normalizado exacto; nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.StockType, error)
	List(ctx context.Context, f StockTypeFilter) ([]*entity.StockType, error)
	Update(ctx context.Context, st *entity.StockType) error
	Delete(ctx context.Context, id string) error
}
