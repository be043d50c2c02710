package engine

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/pkg/logger"
)

// Engine es el motor de acceso a datos: recibe un request tipado, lo enruta
// por tipo de entidad al handler correspondiente, construye consultas
// parametrizadas a partir de los campos presentes, aplica las reglas de
// unicidad/referencialidad y ejecuta las mutaciones dentro de una transacción
// junto con su entrada de bitácora.
type Engine struct {
	log          *logger.Logger
	tx           TxRunner
	stockRepo    repository.StockTypeRepository
	locationRepo repository.LocationRepository
	instanceRepo repository.InstanceRepository
	logRepo      repository.ActivityLogRepository
	quantityRepo repository.QuantityRepository
}

// New construye el motor con sus puertos.
func New(
	log *logger.Logger,
	tx TxRunner,
	stockRepo repository.StockTypeRepository,
	locationRepo repository.LocationRepository,
	instanceRepo repository.InstanceRepository,
	logRepo repository.ActivityLogRepository,
	quantityRepo repository.QuantityRepository,
) *Engine {
	return &Engine{
		log:          log,
		tx:           tx,
		stockRepo:    stockRepo,
		locationRepo: locationRepo,
		instanceRepo: instanceRepo,
		logRepo:      logRepo,
		quantityRepo: quantityRepo,
	}
}

// Add crea una entidad nueva según el tipo del request. Las consultas de
// cantidades y de bitácora son de solo lectura desde este punto de entrada:
// las entradas de bitácora solo nacen como efecto de mutaciones de instancias.
func (e *Engine) Add(ctx context.Context, req dto.Request) error {
	switch r := req.(type) {
	case dto.StockTypeRequest:
		return e.addStockType(ctx, r)
	case dto.LocationRequest:
		return e.addLocation(ctx, r)
	case dto.InstanceRequest:
		return e.addInstance(ctx, r)
	case dto.QuantityRequest, dto.LogRequest:
		return fmt.Errorf("add: %w", domain.ErrUnsupportedEntityKind)
	default:
		return fmt.Errorf("add: %w", domain.ErrUnsupportedEntityKind)
	}
}

// Fetch devuelve las filas que cumplen todos los filtros presentes en el
// request (conjunción AND; campo nil = comodín) como mapas campo→valor.
func (e *Engine) Fetch(ctx context.Context, req dto.Request) ([]dto.Row, error) {
	switch r := req.(type) {
	case dto.StockTypeRequest:
		return e.fetchStockTypes(ctx, r)
	case dto.LocationRequest:
		return e.fetchLocations(ctx, r)
	case dto.InstanceRequest:
		return e.fetchInstances(ctx, r)
	case dto.QuantityRequest:
		return e.fetchQuantities(ctx, r)
	case dto.LogRequest:
		return e.fetchLogs(ctx, r)
	default:
		return nil, fmt.Errorf("fetch: %w", domain.ErrUnsupportedEntityKind)
	}
}

// Update aplica una actualización parcial según el tipo del request.
func (e *Engine) Update(ctx context.Context, req dto.Request) error {
	switch r := req.(type) {
	case dto.StockTypeRequest:
		return e.updateStockType(ctx, r)
	case dto.LocationRequest:
		return e.updateLocation(ctx, r)
	case dto.InstanceRequest:
		return e.updateInstance(ctx, r)
	case dto.QuantityRequest, dto.LogRequest:
		return fmt.Errorf("update: %w", domain.ErrUnsupportedEntityKind)
	default:
		return fmt.Errorf("update: %w", domain.ErrUnsupportedEntityKind)
	}
}

// Delete elimina una entidad según el tipo del request. La bitácora nunca se
// borra, ni siquiera como consecuencia de borrar la instancia que la originó.
func (e *Engine) Delete(ctx context.Context, req dto.Request) error {
	switch r := req.(type) {
	case dto.StockTypeRequest:
		return e.deleteStockType(ctx, r)
	case dto.LocationRequest:
		return e.deleteLocation(ctx, r)
	case dto.InstanceRequest:
		return e.deleteInstance(ctx, r)
	case dto.QuantityRequest, dto.LogRequest:
		return fmt.Errorf("delete: %w", domain.ErrUnsupportedEntityKind)
	default:
		return fmt.Errorf("delete: %w", domain.ErrUnsupportedEntityKind)
	}
}
