package repository

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// LogFilter filtros opcionales para consultar la bitácora.
type LogFilter struct {
	ID           *string
	InstanceID   *string
	StockName    *string
	LocationName *string
	ActivityType *string
}

// ActivityLogRepository define el puerto de la bitácora de actividad.
// Es append-only: no expone Update ni Delete a propósito.
type ActivityLogRepository interface {
	Append(ctx context.Context, e *entity.ActivityLogEntry) error
	List(ctx context.Context, f LogFilter) ([]*entity.ActivityLogEntry, error)
}
