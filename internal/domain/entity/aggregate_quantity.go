package entity

// AggregateQuantity es la suma derivada (no almacenada) de current_quantity
// de todas las instancias de un tipo de stock, junto con su umbral de reposición.
type AggregateQuantity struct {
	StockTypeID      string
	Name             string
	RestockThreshold int
	TotalQuantity    int
}

// NeedsRestock indica si el tipo de stock está en o por debajo de su umbral.
// La comparación es >= a propósito: llegar exactamente al umbral ya dispara reposición.
func (a AggregateQuantity) NeedsRestock() bool {
	return a.RestockThreshold >= a.TotalQuantity
}
