package engine

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// fetchQuantities devuelve la cantidad agregada por tipo de stock (suma de
// current_quantity con cero por defecto para tipos sin instancias),
// filtrable por nombre de stock y/o de ubicación.
func (e *Engine) fetchQuantities(ctx context.Context, r dto.QuantityRequest) ([]dto.Row, error) {
	list, err := e.quantityRepo.List(ctx, repository.QuantityFilter{
		StockName:    normName(r.StockName),
		LocationName: normName(r.LocationName),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.Row, 0, len(list))
	for _, q := range list {
		rows = append(rows, dto.Row{
			"id":                q.StockTypeID,
			"name":              q.Name,
			"restock_threshold": q.RestockThreshold,
			"total_quantity":    q.TotalQuantity,
		})
	}
	return rows, nil
}

// fetchLogs consulta la bitácora aplicando los filtros presentes.
func (e *Engine) fetchLogs(ctx context.Context, r dto.LogRequest) ([]dto.Row, error) {
	list, err := e.logRepo.List(ctx, repository.LogFilter{
		ID:           r.ID,
		InstanceID:   r.InstanceID,
		StockName:    normName(r.StockName),
		LocationName: normName(r.LocationName),
		ActivityType: r.ActivityType,
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.Row, 0, len(list))
	for _, l := range list {
		rows = append(rows, dto.Row{
			"id":              l.ID,
			"instance_id":     l.InstanceID,
			"stock_id":        l.StockTypeID,
			"stock_name":      l.StockName,
			"location_id":     l.LocationID,
			"location_name":   l.LocationName,
			"activity_type":   l.ActivityType,
			"update_details":  l.UpdateDetails,
			"quantity_change": l.QuantityChange,
			"date_occurred":   l.DateOccurred,
		})
	}
	return rows, nil
}

// CheckRestock devuelve los tipos de stock cuya cantidad agregada está en o
// por debajo de su umbral configurado. La comparación es umbral >= total:
// llegar exactamente al umbral ya dispara reposición. Lectura pura, sin
// efectos secundarios.
func (e *Engine) CheckRestock(ctx context.Context) ([]dto.RestockItem, error) {
	list, err := e.quantityRepo.List(ctx, repository.QuantityFilter{})
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestockItem, 0, len(list))
	for _, q := range list {
		if !q.NeedsRestock() {
			continue
		}
		items = append(items, dto.RestockItem{
			ID:               q.StockTypeID,
			Name:             q.Name,
			RestockThreshold: q.RestockThreshold,
			TotalQuantity:    q.TotalQuantity,
		})
	}
	return items, nil
}
