package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// addInstance crea una instancia de inventario referenciando un StockType y
// una Location existentes, y escribe la entrada Created de la bitácora en la
// misma transacción: ambas inserciones se confirman juntas o ninguna queda.
func (e *Engine) addInstance(ctx context.Context, r dto.InstanceRequest) error {
	var missing []string
	if r.StockName == nil || strings.TrimSpace(*r.StockName) == "" {
		missing = append(missing, "nombre de stock es requerido")
	}
	if r.LocationName == nil || strings.TrimSpace(*r.LocationName) == "" {
		missing = append(missing, "nombre de ubicación es requerido")
	}
	if r.Quantity == nil {
		missing = append(missing, "cantidad inicial es requerida")
	}
	if len(missing) > 0 {
		return domain.NewMissingField(strings.Join(missing, "; "))
	}
	if *r.Quantity < 0 {
		return domain.NewMissingField("cantidad debe ser no negativa")
	}

	stockName := NormalizeName(*r.StockName)
	locationName := NormalizeName(*r.LocationName)
	quantity := *r.Quantity

	var instID string
	err := e.tx.Run(ctx, func(
		instRepo repository.InstanceRepository,
		logRepo repository.ActivityLogRepository,
		stockRepo repository.StockTypeRepository,
		locationRepo repository.LocationRepository,
	) error {
		st, err := stockRepo.GetByName(ctx, stockName)
		if err != nil {
			return err
		}
		loc, err := locationRepo.GetByName(ctx, locationName)
		if err != nil {
			return err
		}
		// Distinguir qué referencia falta: stock, ubicación o ambas.
		var notFound []string
		if st == nil {
			notFound = append(notFound, fmt.Sprintf("tipo de stock %q no encontrado", stockName))
		}
		if loc == nil {
			notFound = append(notFound, fmt.Sprintf("ubicación %q no encontrada", locationName))
		}
		if len(notFound) > 0 {
			return domain.NewReferenceNotFound(strings.Join(notFound, "; "))
		}

		inst := &entity.InventoryInstance{
			ID:              uuid.New().String(),
			StockTypeID:     st.ID,
			LocationID:      loc.ID,
			CurrentQuantity: quantity,
		}
		if err := instRepo.Create(ctx, inst); err != nil {
			return err
		}
		instID = inst.ID

		delta := quantity
		return logRepo.Append(ctx, &entity.ActivityLogEntry{
			ID:             uuid.New().String(),
			InstanceID:     &inst.ID,
			StockTypeID:    st.ID,
			StockName:      st.Name,
			LocationID:     loc.ID,
			LocationName:   loc.Name,
			ActivityType:   entity.ActivityCreated,
			QuantityChange: &delta,
			DateOccurred:   time.Now(),
		})
	})
	if err != nil {
		return err
	}
	e.log.Info().Str("instance_id", instID).Str("stock", stockName).Str("location", locationName).
		Int("quantity", quantity).Msg("instancia de inventario creada")
	return nil
}

// fetchInstances lista instancias con nombres resueltos, aplicando los
// filtros presentes.
func (e *Engine) fetchInstances(ctx context.Context, r dto.InstanceRequest) ([]dto.Row, error) {
	list, err := e.instanceRepo.List(ctx, repository.InstanceFilter{
		ID:           r.ID,
		StockName:    normName(r.StockName),
		LocationName: normName(r.LocationName),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.Row, 0, len(list))
	for _, v := range list {
		rows = append(rows, dto.Row{
			"id":               v.ID,
			"stock_name":       v.StockName,
			"location_name":    v.LocationName,
			"current_quantity": v.CurrentQuantity,
		})
	}
	return rows, nil
}

// updateInstance lee la fila original, clasifica el cambio solicitado como
// Location, Quantity o Both comparando contra los valores originales, aplica
// la actualización y escribe la entrada Updated de la bitácora, todo en una
// transacción. Si nada cambió, rechaza sin tocar el almacén.
func (e *Engine) updateInstance(ctx context.Context, r dto.InstanceRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return domain.NewMissingField("cantidad debe ser no negativa")
	}
	id := *r.ID
	newLocName := normName(r.LocationName)

	err := e.tx.Run(ctx, func(
		instRepo repository.InstanceRepository,
		logRepo repository.ActivityLogRepository,
		_ repository.StockTypeRepository,
		locationRepo repository.LocationRepository,
	) error {
		original, err := instRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.NewReferenceNotFound(fmt.Sprintf("instancia de inventario %s no encontrada", id))
		}

		locationID := original.LocationID
		locationName := original.LocationName
		locationChanged := false
		if newLocName != nil && *newLocName != original.LocationName {
			loc, err := locationRepo.GetByName(ctx, *newLocName)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.NewReferenceNotFound(fmt.Sprintf("ubicación %q no encontrada", *newLocName))
			}
			locationID = loc.ID
			locationName = loc.Name
			locationChanged = true
		}

		quantity := original.CurrentQuantity
		quantityChanged := false
		if r.Quantity != nil && *r.Quantity != original.CurrentQuantity {
			quantity = *r.Quantity
			quantityChanged = true
		}

		if !locationChanged && !quantityChanged {
			return domain.NewNoChangeRequested("la ubicación y la cantidad coinciden con los valores actuales")
		}

		var details string
		switch {
		case locationChanged && quantityChanged:
			details = entity.DetailBoth
		case locationChanged:
			details = entity.DetailLocation
		default:
			details = entity.DetailQuantity
		}

		if err := instRepo.Update(ctx, &entity.InventoryInstance{
			ID:              id,
			StockTypeID:     original.StockTypeID,
			LocationID:      locationID,
			CurrentQuantity: quantity,
		}); err != nil {
			return err
		}

		var delta *int
		if quantityChanged {
			d := original.CurrentQuantity - quantity
			delta = &d
		}
		return logRepo.Append(ctx, &entity.ActivityLogEntry{
			ID:             uuid.New().String(),
			InstanceID:     &id,
			StockTypeID:    original.StockTypeID,
			StockName:      original.StockName,
			LocationID:     locationID,
			LocationName:   locationName,
			ActivityType:   entity.ActivityUpdated,
			UpdateDetails:  &details,
			QuantityChange: delta,
			DateOccurred:   time.Now(),
		})
	})
	if err != nil {
		return err
	}
	e.log.Info().Str("instance_id", id).Msg("instancia de inventario actualizada")
	return nil
}

// deleteInstance lee la fila original para el snapshot de bitácora, borra la
// instancia (borrado duro) y escribe la entrada Removed, los tres pasos en
// una transacción. Las entradas previas de bitácora de la instancia quedan:
// jamás se borran.
func (e *Engine) deleteInstance(ctx context.Context, r dto.InstanceRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	id := *r.ID

	err := e.tx.Run(ctx, func(
		instRepo repository.InstanceRepository,
		logRepo repository.ActivityLogRepository,
		_ repository.StockTypeRepository,
		_ repository.LocationRepository,
	) error {
		original, err := instRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.NewReferenceNotFound(fmt.Sprintf("instancia de inventario %s no encontrada", id))
		}
		if err := instRepo.Delete(ctx, id); err != nil {
			return err
		}
		delta := original.CurrentQuantity
		return logRepo.Append(ctx, &entity.ActivityLogEntry{
			ID:             uuid.New().String(),
			InstanceID:     &id,
			StockTypeID:    original.StockTypeID,
			StockName:      original.StockName,
			LocationID:     original.LocationID,
			LocationName:   original.LocationName,
			ActivityType:   entity.ActivityRemoved,
			QuantityChange: &delta,
			DateOccurred:   time.Now(),
		})
	})
	if err != nil {
		return err
	}
	e.log.Info().Str("instance_id", id).Msg("instancia de inventario eliminada")
	return nil
}
