package dto

// UserResponse fila de la tabla de usuarios.
type UserResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
