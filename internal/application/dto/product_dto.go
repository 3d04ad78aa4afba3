package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body de POST /api/products.
type CreateProductRequest struct {
	Nombre              *string          `json:"nombre"`
	Precio              *decimal.Decimal `json:"precio"`
	DiasParaVencimiento *int             `json:"diasParaVencimiento"`
}

// CreateProductResponse confirmación de alta con el id generado.
type CreateProductResponse struct {
	AckResponse
	ID int64 `json:"id"`
}

// ProductResponse fila de la tabla de productos.
type ProductResponse struct {
	ID                  int64           `json:"id"`
	Nombre              string          `json:"nombre"`
	Precio              decimal.Decimal `json:"precio"`
	DiasParaVencimiento int             `json:"diasParaVencimiento"`
}

// ProductIDResponse respuesta de GET /api/productos/id/:nombre.
type ProductIDResponse struct {
	ID int64 `json:"id"`
}
