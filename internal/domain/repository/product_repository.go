package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-api/internal/domain/entity"
)

// CreateProductParams datos de alta de un producto. Un puntero nil se envía como NULL.
type CreateProductParams struct {
	Nombre              *string
	Precio              *decimal.Decimal
	DiasParaVencimiento *int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, in CreateProductParams) (int64, error)
	// GetIDByName busca por nombre exacto; devuelve domain.ErrNotFound si no hay filas.
	GetIDByName(ctx context.Context, nombre string) (int64, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)
}
