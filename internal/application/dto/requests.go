package dto

// Request es la unión etiquetada de los cinco tipos de petición que acepta el
// motor de datos. Sellada con un método no exportado: el type switch del
// dispatcher es exhaustivo y cualquier tipo externo queda excluido en compilación.
type Request interface {
	isRequest()
}

// Los campos de los requests son punteros: nil significa "no suministrado",
// que en fetch actúa como comodín y en update como "no modificar".
// Cada request se construye fresco por llamada; no hay instancias en blanco
// compartidas como valor por defecto.

// StockTypeRequest parámetros de filtro/mutación para tipos de stock.
type StockTypeRequest struct {
	ID               *string `json:"id,omitempty"`
	Name             *string `json:"name,omitempty"`
	RestockThreshold *int    `json:"restock_threshold,omitempty"`
	BaseQuantity     *int    `json:"base_quantity,omitempty"`
}

// LocationRequest parámetros de filtro/mutación para ubicaciones.
type LocationRequest struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// InstanceRequest parámetros de filtro/mutación para instancias de inventario.
// Las referencias a stock y ubicación viajan por nombre, como las ingresa el usuario.
type InstanceRequest struct {
	ID           *string `json:"id,omitempty"`
	StockName    *string `json:"stock_name,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
}

// QuantityRequest consulta de cantidades agregadas por tipo de stock (solo lectura).
type QuantityRequest struct {
	StockName    *string `json:"stock_name,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
}

// LogRequest consulta de la bitácora de actividad (solo lectura: las entradas
// se generan únicamente como efecto de mutaciones sobre instancias).
type LogRequest struct {
	ID           *string `json:"id,omitempty"`
	InstanceID   *string `json:"instance_id,omitempty"`
	StockName    *string `json:"stock_name,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	ActivityType *string `json:"activity_type,omitempty"`
}

func (StockTypeRequest) isRequest() {}
func (LocationRequest) isRequest()  {}
func (InstanceRequest) isRequest()  {}
func (QuantityRequest) isRequest()  {}
func (LogRequest) isRequest()       {}
