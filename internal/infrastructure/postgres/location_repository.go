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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	_, err := r.q.Exec(ctx, `INSERT INTO locations (id, name) VALUES ($1, $2)`, loc.ID, loc.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateName(fmt.Sprintf("ya existe una ubicación con nombre %q", loc.Name))
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	var loc entity.Location
	err := r.q.QueryRow(ctx, `SELECT id, name FROM locations WHERE id = $1`, id).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// GetByName obtiene una ubicación por nombre normalizado exacto; nil si no existe.
func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	var loc entity.Location
	err := r.q.QueryRow(ctx, `SELECT id, name FROM locations WHERE name = $1`, name).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by name: %w", err)
	}
	return &loc, nil
}

// List construye la consulta condicionalmente a partir de los filtros presentes.
func (r *LocationRepo) List(ctx context.Context, f repository.LocationFilter) ([]*entity.Location, error) {
	query := `SELECT id, name FROM locations WHERE 1=1`
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
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// Update renombra una ubicación existente.
func (r *LocationRepo) Update(ctx context.Context, loc *entity.Location) error {
	_, err := r.q.Exec(ctx, `UPDATE locations SET name = $2 WHERE id = $1`, loc.ID, loc.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateName(fmt.Sprintf("ya existe una ubicación con nombre %q", loc.Name))
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID (borrado duro).
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
