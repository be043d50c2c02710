package entity

import "time"

// Tipos de actividad registrados en la bitácora.
const (
	ActivityCreated = "Created"
	ActivityUpdated = "Updated"
	ActivityRemoved = "Removed"
)

// Detalle del cambio para entradas de tipo Updated.
const (
	DetailLocation = "Location"
	DetailQuantity = "Quantity"
	DetailBoth     = "Both"
)

// ActivityLogEntry es una entrada inmutable de la bitácora de actividad.
// Se produce únicamente como efecto secundario de mutaciones sobre
// InventoryInstance, nunca la crea un caller directamente, y jamás se
// actualiza ni se borra una vez confirmada.
type ActivityLogEntry struct {
	ID             string
	InstanceID     *string // puede sobrevivir a la instancia que registró
	StockTypeID    string
	StockName      string // snapshot al momento del movimiento
	LocationID     string
	LocationName   string // snapshot al momento del movimiento
	ActivityType   string
	UpdateDetails  *string // Location | Quantity | Both; nil para Created/Removed
	QuantityChange *int
	DateOccurred   time.Time
}
