package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	ErrAggregateFailure = errors.New("fallaron todas las consultas de notificación")
	ErrInvalidInput     = errors.New("entrada inválida")
)
