package dto

import "github.com/shopspring/decimal"

// InventoryRowDTO fila de GET /api/inventario: lote unido a su usuario y producto.
type InventoryRowDTO struct {
	CodigoLote          string          `json:"codigoLote"`
	CantidadLote        int             `json:"cantidadLote"`
	FechaEntrada        Date            `json:"fechaEntrada"`
	NombreUsuario       string          `json:"nombreUsuario"`
	NombreProducto      string          `json:"nombreProducto"`
	PrecioProducto      decimal.Decimal `json:"precioProducto"`
	DiasParaVencimiento int             `json:"diasParaVencimiento"`
	Estado              string          `json:"estado"` // vigente | por_vencer | vencido
}

// NearExpiryRowDTO lote con 0..N días de vida útil restantes.
type NearExpiryRowDTO struct {
	CodigoLote          string `json:"codigoLote"`
	NombreProducto      string `json:"nombreProducto"`
	CantidadLote        int    `json:"cantidadLote"`
	FechaEntrada        Date   `json:"fechaEntrada"`
	NombreUsuario       string `json:"nombreUsuario"`
	DiasParaVencimiento int    `json:"diasParaVencimiento"`
	DiasRestantes       int    `json:"diasRestantes"`
}

// ExpiredRowDTO lote cuya vida útil ya pasó; DiasDesdeVencimiento siempre > 0.
type ExpiredRowDTO struct {
	CodigoLote           string `json:"codigoLote"`
	NombreProducto       string `json:"nombreProducto"`
	CantidadLote         int    `json:"cantidadLote"`
	FechaEntrada         Date   `json:"fechaEntrada"`
	NombreUsuario        string `json:"nombreUsuario"`
	DiasParaVencimiento  int    `json:"diasParaVencimiento"`
	DiasDesdeVencimiento int    `json:"diasDesdeVencimiento"`
}

// LowStockRowDTO lote con cantidad en o por debajo del umbral de bajo stock.
type LowStockRowDTO struct {
	CodigoLote     string `json:"codigoLote"`
	NombreProducto string `json:"nombreProducto"`
	CantidadLote   int    `json:"cantidadLote"`
	FechaEntrada   Date   `json:"fechaEntrada"`
	NombreUsuario  string `json:"nombreUsuario"`
}
