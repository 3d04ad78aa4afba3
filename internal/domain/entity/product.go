package entity

import "github.com/shopspring/decimal"

// Product representa un producto perecedero del fruver.
// DiasParaVencimiento es la vida útil en días contados desde la fecha de entrada del lote.
type Product struct {
	ID                  int64
	Nombre              string
	Precio              decimal.Decimal
	DiasParaVencimiento int
}
