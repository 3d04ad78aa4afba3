package repository

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
)

// CreateLotParams datos de alta de un lote. Un puntero nil se envía como NULL
// (Codigo nil usa el valor por defecto de la secuencia).
type CreateLotParams struct {
	Codigo       *string
	FechaEntrada *string
	IDUsuario    *int64
	IDProductos  *int64
	Cantidad     *int
}

// UpdateLotParams campos mutables de un lote.
type UpdateLotParams struct {
	IDProductos *int64
	Cantidad    *int
}

// LotRepository define el puerto de persistencia para Lot.
// Update y Delete devuelven las filas afectadas; cero filas no es un error.
type LotRepository interface {
	Create(ctx context.Context, in CreateLotParams) (string, error)
	Update(ctx context.Context, codigo string, in UpdateLotParams) (int64, error)
	Delete(ctx context.Context, codigo string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]dto.RecentLotDTO, error)
}
