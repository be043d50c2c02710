package repository

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// QuantityFilter filtros opcionales para la consulta de cantidades agregadas.
type QuantityFilter struct {
	StockName    *string
	LocationName *string
}

// QuantityRepository expone la lectura derivada de cantidades por tipo de stock:
// LEFT JOIN de stock_types a inventory_instances agrupado por tipo, con
// COALESCE(SUM(current_quantity), 0) para tipos sin instancias.
type QuantityRepository interface {
	List(ctx context.Context, f QuantityFilter) ([]*entity.AggregateQuantity, error)
}
