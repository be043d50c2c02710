package repository

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// LocationFilter filtros opcionales para listar ubicaciones.
type LocationFilter struct {
	ID   *string
	Name *string
}

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(ctx context.Context, loc *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetByName(ctx context.Context, name string) (*entity.Location, error)
	List(ctx context.Context, f LocationFilter) ([]*entity.Location, error)
	Update(ctx context.Context, loc *entity.Location) error
	Delete(ctx context.Context, id string) error
}
