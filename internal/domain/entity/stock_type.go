package entity

// StockType representa una categoría de artículo rastreable (ej. "BOLT"),
// distinta de cualquier instancia física de la misma.
// El nombre se guarda normalizado (mayúsculas, sin espacios sobrantes) y es único.
type StockType struct {
	ID               string
	Name             string
	RestockThreshold int // cantidad agregada mínima; en o por debajo dispara reposición
	BaseQuantity     int // cantidad por defecto sugerida al crear instancias
}
