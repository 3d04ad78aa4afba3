package dto

import "github.com/shopspring/decimal"

// MostMovedDTO fila del reporte de productos más movidos.
// La agrupación es por (producto, usuario): un producto con lotes de varios usuarios aparece varias veces.
type MostMovedDTO struct {
	NombreProducto   string          `json:"nombreProducto"`
	PrecioProducto   decimal.Decimal `json:"precioProducto"`
	TotalCantidad    int64           `json:"totalCantidad"`
	UsuarioPrincipal string          `json:"usuarioPrincipal"`
}

// TopUserDTO fila del reporte de usuarios con más lotes ingresados.
type TopUserDTO struct {
	NombreUsuario        string `json:"nombreUsuario"`
	TotalLotesIngresados int64  `json:"totalLotesIngresados"`
}
