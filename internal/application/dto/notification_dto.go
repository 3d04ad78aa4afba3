package dto

// NotificationsDTO respuesta de GET /api/notificaciones.
// Cada clave se omite cuando su consulta no encontró nada relevante; nunca se envía null.
type NotificationsDTO struct {
	MasCercano *NearestExpiryDTO `json:"masCercano,omitempty"`
	ExpiraHoy  *ExpiringTodayDTO `json:"expiraHoy,omitempty"`
	LotesHoy   int               `json:"lotesHoy,omitempty"`
	Errores    []string          `json:"errores,omitempty"` // consultas que fallaron
}

// NearestExpiryDTO producto con el menor número positivo de días restantes.
type NearestExpiryDTO struct {
	NombreProducto string `json:"nombreProducto"`
	DiasRestantes  int    `json:"diasRestantes"`
}

// ExpiringTodayDTO producto cuyo lote cumple hoy exactamente su vida útil.
type ExpiringTodayDTO struct {
	NombreProducto string `json:"nombreProducto"`
}
