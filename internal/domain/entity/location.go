package entity

// Location representa un lugar físico de almacenamiento con nombre único normalizado.
type Location struct {
	ID   string
	Name string
}
