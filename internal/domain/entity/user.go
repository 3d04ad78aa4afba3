package entity

// User representa a quien registra lotes. Es dato de referencia: la API solo lo lee.
type User struct {
	ID     int64
	Nombre string
}
