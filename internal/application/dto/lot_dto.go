package dto

// CreateLotRequest body de POST /api/lotes.
// Los campos ausentes llegan como NULL al almacén, que decide si los acepta.
type CreateLotRequest struct {
	Codigo       *string `json:"codigo,omitempty"` // opcional; si falta lo asigna la secuencia
	FechaEntrada *string `json:"fechaEntrada"`     // YYYY-MM-DD
	IDUsuario    *int64  `json:"idUsuario"`
	IDProductos  *int64  `json:"idProductos"`
	Cantidad     *int    `json:"cantidad"`
}

// UpdateLotRequest body de PUT /api/lotes/:codigoLote. Solo producto y cantidad son mutables.
type UpdateLotRequest struct {
	IDProductos  *int64 `json:"idProductos"`
	CantidadLote *int   `json:"cantidadLote"`
}

// CreateLotResponse confirmación de alta de lote con el código asignado.
type CreateLotResponse struct {
	AckResponse
	CodigoLote string `json:"codigoLote"`
}

// RecentLotDTO fila de GET /api/lotes/recientes.
type RecentLotDTO struct {
	CodigoLote     string `json:"codigoLote"`
	CantidadLote   int    `json:"cantidadLote"`
	FechaEntrada   Date   `json:"fechaEntrada"`
	NombreProducto string `json:"nombreProducto"`
}
