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

// addStockType valida campos obligatorios y unicidad del nombre, e inserta.
func (e *Engine) addStockType(ctx context.Context, r dto.StockTypeRequest) error {
	var missing []string
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		missing = append(missing, "nombre es requerido")
	}
	if r.RestockThreshold == nil {
		missing = append(missing, "umbral de reposición es requerido")
	}
	if len(missing) > 0 {
		return domain.NewMissingField(strings.Join(missing, "; "))
	}
	if *r.RestockThreshold < 0 {
		return domain.NewMissingField("umbral de reposición debe ser no negativo")
	}
	baseQty := 0
	if r.BaseQuantity != nil {
		if *r.BaseQuantity < 0 {
			return domain.NewMissingField("cantidad base debe ser no negativa")
		}
		baseQty = *r.BaseQuantity
	}

	name := NormalizeName(*r.Name)
	existing, err := e.stockRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("verificar nombre de stock: %w", err)
	}
	if existing != nil {
		return domain.NewDuplicateName(fmt.Sprintf("ya existe un tipo de stock con nombre %q", name))
	}

	st := &entity.StockType{
		ID:               uuid.New().String(),
		Name:             name,
		RestockThreshold: *r.RestockThreshold,
		BaseQuantity:     baseQty,
	}
	if err := e.stockRepo.Create(ctx, st); err != nil {
		return err
	}
	e.log.Info().Str("stock_type_id", st.ID).Str("name", st.Name).Msg("tipo de stock creado")
	return nil
}

// fetchStockTypes lista tipos de stock aplicando los filtros presentes.
func (e *Engine) fetchStockTypes(ctx context.Context, r dto.StockTypeRequest) ([]dto.Row, error) {
	list, err := e.stockRepo.List(ctx, repository.StockTypeFilter{
		ID:   r.ID,
		Name: normName(r.Name),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.Row, 0, len(list))
	for _, st := range list {
		rows = append(rows, dto.Row{
			"id":                st.ID,
			"name":              st.Name,
			"restock_threshold": st.RestockThreshold,
			"base_quantity":     st.BaseQuantity,
		})
	}
	return rows, nil
}

// updateStockType aplica una actualización parcial (nombre y/o umbral),
// re-validando la unicidad contra las demás filas: renombrar al mismo nombre
// propio está permitido.
func (e *Engine) updateStockType(ctx context.Context, r dto.StockTypeRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	if r.Name == nil && r.RestockThreshold == nil {
		return domain.NewMissingField("nada que actualizar: se requiere nombre o umbral")
	}

	current, err := e.stockRepo.GetByID(ctx, *r.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewReferenceNotFound(fmt.Sprintf("tipo de stock %s no encontrado", *r.ID))
	}

	if r.Name != nil {
		name := NormalizeName(*r.Name)
		if name == "" {
			return domain.NewMissingField("nombre es requerido")
		}
		other, err := e.stockRepo.GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("verificar nombre de stock: %w", err)
		}
		if other != nil && other.ID != current.ID {
			return domain.NewDuplicateName(fmt.Sprintf("ya existe un tipo de stock con nombre %q", name))
		}
		current.Name = name
	}
	if r.RestockThreshold != nil {
		if *r.RestockThreshold < 0 {
			return domain.NewMissingField("umbral de reposición debe ser no negativo")
		}
		current.RestockThreshold = *r.RestockThreshold
	}

	if err := e.stockRepo.Update(ctx, current); err != nil {
		return err
	}
	e.log.Info().Str("stock_type_id", current.ID).Msg("tipo de stock actualizado")
	return nil
}

// deleteStockType borra un tipo de stock, salvo que alguna instancia de
// inventario lo referencie. Chequeo referencial y borrado van en la misma
// transacción.
func (e *Engine) deleteStockType(ctx context.Context, r dto.StockTypeRequest) error {
	if r.ID == nil || *r.ID == "" {
		return domain.NewMissingField("id es requerido")
	}
	id := *r.ID

	err := e.tx.Run(ctx, func(
		instRepo repository.InstanceRepository,
		_ repository.ActivityLogRepository,
		stockRepo repository.StockTypeRepository,
		_ repository.LocationRepository,
	) error {
		st, err := stockRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if st == nil {
			return domain.NewReferenceNotFound(fmt.Sprintf("tipo de stock %s no encontrado", id))
		}
		refs, err := instRepo.CountByStockType(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.NewReferencedByInventory(
				fmt.Sprintf("el tipo de stock %q tiene %d instancia(s) de inventario asociadas", st.Name, refs))
		}
		return stockRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	e.log.Info().Str("stock_type_id", id).Msg("tipo de stock eliminado")
	return nil
}
