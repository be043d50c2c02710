package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// addLocation valida nombre obligatorio y único, e inserta.
func (e *Engine) addLocation(ctx context.Context, r dto.LocationRequest) error {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return domain.NewMissingField("nombre es requerido")
	}
	name := NormalizeName(*r.Name)

	existing, err := e.locationRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("verificar nombre de ubicación: %w", err)
	}
	if existing != nil {
		return domain.NewDuplicateName(fmt.Sprintf("ya existe una ubicación con nombre %q", name))
	}

	loc := &entity.Location{ID: uuid.New().String(), Name: name}
	if err := e.locationRepo.Create(ctx, loc); err != nil {
		return err
	}
	e.log.Info().Str("location_id", loc.ID).Str("name", loc.Name).Msg("ubicación creada")
	return nil
}

// fetchLocations lista ubicaciones aplicando los filtros presentes.
func (e *Engine) fetchLocations(ctx context.Context, r dto.LocationRequest) ([]dto.Row, error) {
	list, err := e.locationRepo.List(ctx, repository.LocationFilter{
		ID:   r.ID,
		Name: normName(r.Name),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.Row, 0, len(list))
	for _, loc := range list {
		rows = append(rows, dto.Row{
			"id":   loc.ID,
			"name": loc.Name,
		})
	}
	return rows, nil
}

// updateLocation renombra una ubicación, re-validando unicidad contra las
// demás filas (renombrar al mismo nombre propio está permitido).
func (e *Engine) updateLocation(ctx context.Context, r dto.LocationRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	if r.Name == nil {
		return domain.NewMissingField("nombre es requerido")
	}

	current, err := e.locationRepo.GetByID(ctx, *r.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewReferenceNotFound(fmt.Sprintf("ubicación %s no encontrada", *r.ID))
	}

	name := NormalizeName(*r.Name)
	if name == "" {
		return domain.NewMissingField("nombre es requerido")
	}
	other, err := e.locationRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("verificar nombre de ubicación: %w", err)
	}
	if other != nil && other.ID != current.ID {
		return domain.NewDuplicateName(fmt.Sprintf("ya existe una ubicación con nombre %q", name))
	}

	current.Name = name
	if err := e.locationRepo.Update(ctx, current); err != nil {
		return err
	}
	e.log.Info().Str("location_id", current.ID).Msg("ubicación actualizada")
	return nil
}

// deleteLocation borra una ubicación, salvo que alguna instancia de inventario
// la referencie. Chequeo referencial y borrado van en la misma transacción.
func (e *Engine) deleteLocation(ctx context.Context, r dto.LocationRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	id := *r.ID

	err := e.tx.Run(ctx, func(
		instRepo repository.InstanceRepository,
		_ repository.ActivityLogRepository,
		_ repository.StockTypeRepository,
		locationRepo repository.LocationRepository,
	) error {
		loc, err := locationRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.NewReferenceNotFound(fmt.Sprintf("ubicación %s no encontrada", id))
		}
		refs, err := instRepo.CountByLocation(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.NewReferencedByInventory(
				fmt.Sprintf("la ubicación %q tiene %d instancia(s) de inventario asociadas", loc.Name, refs))
		}
		return locationRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	e.log.Info().Str("location_id", id).Msg("ubicación eliminada")
	return nil
}
