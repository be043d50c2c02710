package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.InstanceRepository = (*InstanceRepo)(nil)

// InstanceRepo implementación de InstanceRepository sobre PostgreSQL (usable con pool o tx).
type InstanceRepo struct {
	q Querier
}

// NewInstanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInstanceRepository(q Querier) *InstanceRepo {
	return &InstanceRepo{q: q}
}

// Create persiste una nueva instancia de inventario.
func (r *InstanceRepo) Create(ctx context.Context, inst *entity.InventoryInstance) error {
	query := `
		INSERT INTO inventory_instances (id, stock_type_id, location_id, current_quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, inst.ID, inst.StockTypeID, inst.LocationID, inst.CurrentQuantity)
	if err != nil {
		return fmt.Errorf("insert inventory instance: %w", err)
	}
	return nil
}

const instanceViewSelect = `
	SELECT i.id, i.stock_type_id, s.name, i.location_id, l.name, i.current_quantity
	FROM inventory_instances i
	JOIN stock_types s ON s.id = i.stock_type_id
	JOIN locations l ON l.id = i.location_id`

// GetByID obtiene la vista de una instancia con nombres resueltos; nil si no existe.
func (r *InstanceRepo) GetByID(ctx context.Context, id string) (*entity.InstanceView, error) {
	var v entity.InstanceView
	err := r.q.QueryRow(ctx, instanceViewSelect+` WHERE i.id = $1`, id).Scan(
		&v.ID, &v.StockTypeID, &v.StockName, &v.LocationID, &v.LocationName, &v.CurrentQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory instance: %w", err)
	}
	return &v, nil
}

// List construye la consulta condicionalmente: los filtros por nombre aplican
// sobre los JOIN con stock_types y locations; cada predicado va con parámetro
// posicional.
func (r *InstanceRepo) List(ctx context.Context, f repository.InstanceFilter) ([]*entity.InstanceView, error) {
	query := instanceViewSelect + ` WHERE 1=1`
	var args []any

	if f.ID != nil {
		args = append(args, *f.ID)
		query += fmt.Sprintf(" AND i.id = $%d", len(args))
	}
	if f.StockName != nil {
		args = append(args, *f.StockName)
		query += fmt.Sprintf(" AND s.name = $%d", len(args))
	}
	if f.LocationName != nil {
		args = append(args, *f.LocationName)
		query += fmt.Sprintf(" AND l.name = $%d", len(args))
	}
	query += " ORDER BY s.name, l.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory instances: %w", err)
	}
	defer rows.Close()
	var list []*entity.InstanceView
	for rows.Next() {
		var v entity.InstanceView
		if err := rows.Scan(&v.ID, &v.StockTypeID, &v.StockName, &v.LocationID, &v.LocationName, &v.CurrentQuantity); err != nil {
			return nil, fmt.Errorf("scan inventory instance: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza ubicación y cantidad de una instancia existente.
func (r *InstanceRepo) Update(ctx context.Context, inst *entity.InventoryInstance) error {
	query := `
		UPDATE inventory_instances SET location_id = $2, current_quantity = $3
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, inst.ID, inst.LocationID, inst.CurrentQuantity)
	if err != nil {
		return fmt.Errorf("update inventory instance: %w", err)
	}
	return nil
}

// Delete elimina una instancia por ID (borrado duro; la bitácora queda).
func (r *InstanceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory instance: %w", err)
	}
	return nil
}

// CountByStockType cuenta instancias que referencian un tipo de stock.
func (r *InstanceRepo) CountByStockType(ctx context.Context, stockTypeID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM inventory_instances WHERE stock_type_id = $1`, stockTypeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count instances by stock type: %w", err)
	}
	return n, nil
}

// CountByLocation cuenta instancias que referencian una ubicación.
func (r *InstanceRepo) CountByLocation(ctx context.Context, locationID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM inventory_instances WHERE location_id = $1`, locationID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count instances by location: %w", err)
	}
	return n, nil
}
