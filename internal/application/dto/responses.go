package dto

// Row es una fila de resultado como mapa campo→valor, la forma que el front
// end vuelca directamente en sus tablas. El orden de los campos no es
// significativo para los callers.
type Row map[string]any

// RestockItem es un elemento de la lista de reposición derivada.
type RestockItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	RestockThreshold int    `json:"restock_threshold"`
	TotalQuantity    int    `json:"total_quantity"`
}

// ErrorResponse cuerpo de error que consume el front end para renderizar un
// diálogo: título + mensaje.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
