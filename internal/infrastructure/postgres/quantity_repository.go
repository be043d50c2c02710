package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.QuantityRepository = (*QuantityRepo)(nil)

// QuantityRepo implementación de QuantityRepository sobre PostgreSQL.
type QuantityRepo struct {
	q Querier
}

// NewQuantityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuantityRepository(q Querier) *QuantityRepo {
	return &QuantityRepo{q: q}
}

// List devuelve la cantidad agregada por tipo de stock: LEFT JOIN de
// stock_types a inventory_instances agrupado por tipo, con cero por defecto
// para tipos sin instancias. El filtro de ubicación va en la condición del
// JOIN para no excluir tipos sin instancias en esa ubicación; el de stock en
// el WHERE. Todos los valores van como parámetros posicionales.
func (r *QuantityRepo) List(ctx context.Context, f repository.QuantityFilter) ([]*entity.AggregateQuantity, error) {
	query := `
		SELECT s.id, s.name, s.restock_threshold, COALESCE(SUM(i.current_quantity), 0) AS total_quantity
		FROM stock_types s
		LEFT JOIN inventory_instances i ON i.stock_type_id = s.id`
	var args []any

	if f.LocationName != nil {
		args = append(args, *f.LocationName)
		query += fmt.Sprintf(" AND i.location_id IN (SELECT id FROM locations WHERE name = $%d)", len(args))
	}
	query += " WHERE 1=1"
	if f.StockName != nil {
		args = append(args, *f.StockName)
		query += fmt.Sprintf(" AND s.name = $%d", len(args))
	}
	query += " GROUP BY s.id, s.name, s.restock_threshold ORDER BY s.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list aggregate quantities: %w", err)
	}
	defer rows.Close()
	var list []*entity.AggregateQuantity
	for rows.Next() {
		var a entity.AggregateQuantity
		if err := rows.Scan(&a.StockTypeID, &a.Name, &a.RestockThreshold, &a.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan aggregate quantity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
