package entity

// InventoryInstance representa un lote físico de un tipo de stock en una ubicación.
// Siempre referencia un StockType y una Location existentes al momento de crearse.
type InventoryInstance struct {
	ID              string
	StockTypeID     string
	LocationID      string
	CurrentQuantity int
}

// InstanceView es la fila de inventario con los nombres resueltos vía JOIN,
// tal como la consume el front end.
type InstanceView struct {
	ID              string
	StockTypeID     string
	StockName       string
	LocationID      string
	LocationName    string
	CurrentQuantity int
}
