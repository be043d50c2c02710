package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación append-only de ActivityLogRepository sobre
// PostgreSQL. No hay UPDATE ni DELETE sobre activity_logs en ninguna parte.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Append inserta una entrada de bitácora.
func (r *ActivityLogRepo) Append(ctx context.Context, e *entity.ActivityLogEntry) error {
	query := `
		INSERT INTO activity_logs
			(id, instance_id, stock_type_id, stock_name, location_id, location_name,
			 activity_type, update_details, quantity_change, date_occurred)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.InstanceID, e.StockTypeID, e.StockName, e.LocationID, e.LocationName,
		e.ActivityType, e.UpdateDetails, e.QuantityChange, e.DateOccurred,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List construye la consulta condicionalmente a partir de los filtros presentes.
func (r *ActivityLogRepo) List(ctx context.Context, f repository.LogFilter) ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT id, instance_id, stock_type_id, stock_name, location_id, location_name,
		       activity_type, update_details, quantity_change, date_occurred
		FROM activity_logs WHERE 1=1`
	var args []any

	if f.ID != nil {
		args = append(args, *f.ID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	if f.InstanceID != nil {
		args = append(args, *f.InstanceID)
		query += fmt.Sprintf(" AND instance_id = $%d", len(args))
	}
	if f.StockName != nil {
		args = append(args, *f.StockName)
		query += fmt.Sprintf(" AND stock_name = $%d", len(args))
	}
	if f.LocationName != nil {
		args = append(args, *f.LocationName)
		query += fmt.Sprintf(" AND location_name = $%d", len(args))
	}
	if f.ActivityType != nil {
		args = append(args, *f.ActivityType)
		query += fmt.Sprintf(" AND activity_type = $%d", len(args))
	}
	query += " ORDER BY date_occurred DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		if err := rows.Scan(
			&e.ID, &e.InstanceID, &e.StockTypeID, &e.StockName, &e.LocationID, &e.LocationName,
			&e.ActivityType, &e.UpdateDetails, &e.QuantityChange, &e.DateOccurred,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
