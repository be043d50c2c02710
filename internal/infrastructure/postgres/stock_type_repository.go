package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.StockTypeRepository = (*StockTypeRepo)(nil)

// StockTypeRepo implementación de StockTypeRepository sobre PostgreSQL (usable con pool o tx).
type StockTypeRepo struct {
	q Querier
}

// NewStockTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTypeRepository(q Querier) *StockTypeRepo {
	return &StockTypeRepo{q: q}
}

// Create persiste un nuevo tipo de stock.
func (r *StockTypeRepo) Create(ctx context.Context, st *entity.StockType) error {
	query := `
		INSERT INTO stock_types (id, name, restock_threshold, base_quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, st.ID, st.Name, st.RestockThreshold, st.BaseQuantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateName(fmt.Sprintf("ya existe un tipo de stock con nombre %q", st.Name))
		}
		return fmt.Errorf("insert stock type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de stock por ID; nil si no existe.
func (r *StockTypeRepo) GetByID(ctx context.Context, id string) (*entity.StockType, error) {
	query := `
		SELECT id, name, restock_threshold, base_quantity
		FROM stock_types WHERE id = $1`
	var st entity.StockType
	err := r.q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.RestockThreshold, &st.BaseQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock type: %w", err)
	}
	return &st, nil
}

// GetByName obtiene un tipo de stock por nombre normalizado exacto; nil si no existe.
func (r *StockTypeRepo) GetByName(ctx context.Context, name string) (*entity.StockType, error) {
	query := `
		SELECT id, name, restock_threshold, base_quantity
		FROM stock_types WHERE name = $1`
	var st entity.StockType
	err := r.q.QueryRow(ctx, query, name).Scan(&st.ID, &st.Name, &st.RestockThreshold, &st.BaseQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock type by name: %w", err)
	}
	return &st, nil
}

// List construye la consulta condicionalmente: parte de "todos los tipos de
// stock" y por cada filtro presente agrega un predicado de igualdad con
// parámetro posicional, nunca interpolando valores en el texto SQL.
func (r *StockTypeRepo) List(ctx context.Context, f repository.StockTypeFilter) ([]*entity.StockType, error) {
	query := `
		SELECT id, name, restock_threshold, base_quantity
		FROM stock_types WHERE 1=1`
	var args []any

	if f.ID != nil {
		args = append(args, *f.ID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	if f.Name != nil {
		args = append(args, *f.Name)
		query += fmt.Sprintf(" AND name = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock types: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockType
	for rows.Next() {
		var st entity.StockType
		if err := rows.Scan(&st.ID, &st.Name, &st.RestockThreshold, &st.BaseQuantity); err != nil {
			return nil, fmt.Errorf("scan stock type: %w", err)
		}
		list = append(list, &st)
	}
	return list, rows.Err()
}

// Update actualiza nombre y umbral de un tipo de stock existente.
func (r *StockTypeRepo) Update(ctx context.Context, st *entity.StockType) error {
	query := `
		UPDATE stock_types SET name = $2, restock_threshold = $3
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, st.ID, st.Name, st.RestockThreshold)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateName(fmt.Sprintf("ya existe un tipo de stock con nombre %q", st.Name))
		}
		return fmt.Errorf("update stock type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de stock por ID (borrado duro).
func (r *StockTypeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock type: %w", err)
	}
	return nil
}
