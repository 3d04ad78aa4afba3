package dto

import (
	"time"
)

// DateLayout formato de fecha (sin hora) usado en las respuestas y en fechaEntrada.
const DateLayout = "2006-01-02"

// Date fecha calendario que se serializa como "YYYY-MM-DD", igual que DATE() en SQL.
type Date struct {
	time.Time
}

// MarshalJSON serializa solo la parte de fecha.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// String devuelve la fecha en DateLayout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// AckResponse confirmación de una operación de escritura.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
