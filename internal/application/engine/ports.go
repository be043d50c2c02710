package engine

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de las secuencias
// multi-sentencia del motor: mutación de instancia + entrada de bitácora, y
// chequeo referencial + borrado. Si fn retorna error, todo se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		instRepo repository.InstanceRepository,
		logRepo repository.ActivityLogRepository,
		stockRepo repository.StockTypeRepository,
		locationRepo repository.LocationRepository,
	) error) error
}
