package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fruver-api/internal/application/dto"
)

// InventoryRepository consultas de solo lectura sobre Lote × Usuario × Productos.
// Los términos de búsqueda son texto literal: coincide toda fila que los contenga, sin distinguir mayúsculas.
type InventoryRepository interface {
	List(ctx context.Context) ([]dto.InventoryRowDTO, error)
	// Search filtra por código de lote o nombre de producto.
	Search(ctx context.Context, term string) ([]dto.InventoryRowDTO, error)

	// NearExpiry lotes con 0 <= días restantes <= window a la fecha today.
	NearExpiry(ctx context.Context, today time.Time, window int) ([]dto.NearExpiryRowDTO, error)
	// LowStock lotes con cantidad <= threshold.
	LowStock(ctx context.Context, threshold int) ([]dto.LowStockRowDTO, error)
	// LowStockSearch como LowStock, filtrando por nombre de producto o de usuario.
	LowStockSearch(ctx context.Context, threshold int, term string) ([]dto.LowStockRowDTO, error)
	// Expired lotes con días transcurridos > vida útil.
	Expired(ctx context.Context, today time.Time) ([]dto.ExpiredRowDTO, error)
	// RecentExpired como Expired, por código descendente y con límite.
	RecentExpired(ctx context.Context, today time.Time, limit int) ([]dto.ExpiredRowDTO, error)
}
