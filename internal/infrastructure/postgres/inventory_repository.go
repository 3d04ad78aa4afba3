package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo consultas de solo lectura del inventario y de las alertas de vencimiento y stock.
// La fecha de hoy llega como parámetro: ($n::date - l.fecha_entrada) son los días transcurridos.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventorySelect = `
	SELECT
	    l.codigo                 AS codigo_lote,
	    l.cantidad               AS cantidad_lote,
	    l.fecha_entrada,
	    u.nombre                 AS nombre_usuario,
	    p.nombre                 AS nombre_producto,
	    p.precio                 AS precio_producto,
	    p.dias_para_vencimiento
	FROM lote l
	JOIN usuario   u ON u.id = l.id_usuario
	JOIN productos p ON p.id = l.id_productos`

// List devuelve todo el inventario.
func (r *InventoryRepo) List(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	return r.inventory(ctx, "inventario.List", inventorySelect+`
	ORDER BY l.codigo`)
}

// Search filtra por código de lote o nombre de producto (contiene, sin distinguir mayúsculas).
func (r *InventoryRepo) Search(ctx context.Context, term string) ([]dto.InventoryRowDTO, error) {
	return r.inventory(ctx, "inventario.Search", inventorySelect+`
	WHERE l.codigo ILIKE $1 OR p.nombre ILIKE $1
	ORDER BY l.codigo`, containsPattern(term))
}

func (r *InventoryRepo) inventory(ctx context.Context, op, query string, args ...any) ([]dto.InventoryRowDTO, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.InventoryRowDTO, error) {
		var item dto.InventoryRowDTO
		err := row.Scan(
			&item.CodigoLote,
			&item.CantidadLote,
			&item.FechaEntrada.Time,
			&item.NombreUsuario,
			&item.NombreProducto,
			&item.PrecioProducto,
			&item.DiasParaVencimiento,
		)
		return item, err
	})
}

// NearExpiry lotes con 0 <= vida útil - días transcurridos <= window.
func (r *InventoryRepo) NearExpiry(ctx context.Context, today time.Time, window int) ([]dto.NearExpiryRowDTO, error) {
	const query = `
	SELECT
	    l.codigo,
	    p.nombre,
	    l.cantidad,
	    l.fecha_entrada,
	    u.nombre,
	    p.dias_para_vencimiento,
	    p.dias_para_vencimiento - ($1::date - l.fecha_entrada) AS dias_restantes
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	JOIN usuario   u ON u.id = l.id_usuario
	WHERE p.dias_para_vencimiento - ($1::date - l.fecha_entrada) BETWEEN 0 AND $2
	ORDER BY dias_restantes ASC, l.codigo`

	const op = "inventario.NearExpiry"
	rows, err := r.q.Query(ctx, query, today, window)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.NearExpiryRowDTO, error) {
		var item dto.NearExpiryRowDTO
		err := row.Scan(
			&item.CodigoLote,
			&item.NombreProducto,
			&item.CantidadLote,
			&item.FechaEntrada.Time,
			&item.NombreUsuario,
			&item.DiasParaVencimiento,
			&item.DiasRestantes,
		)
		return item, err
	})
}

const lowStockSelect = `
	SELECT l.codigo, p.nombre, l.cantidad, l.fecha_entrada, u.nombre
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	JOIN usuario   u ON u.id = l.id_usuario
	WHERE l.cantidad <= $1`

// LowStock lotes con cantidad <= threshold.
func (r *InventoryRepo) LowStock(ctx context.Context, threshold int) ([]dto.LowStockRowDTO, error) {
	return r.lowStock(ctx, "inventario.LowStock", lowStockSelect+`
	ORDER BY l.cantidad ASC, l.codigo`, threshold)
}

// LowStockSearch lotes en bajo stock cuyo producto o usuario contiene term.
func (r *InventoryRepo) LowStockSearch(ctx context.Context, threshold int, term string) ([]dto.LowStockRowDTO, error) {
	return r.lowStock(ctx, "inventario.LowStockSearch", lowStockSelect+`
	  AND (p.nombre ILIKE $2 OR u.nombre ILIKE $2)
	ORDER BY l.cantidad ASC, l.codigo`, threshold, containsPattern(term))
}

func (r *InventoryRepo) lowStock(ctx context.Context, op, query string, args ...any) ([]dto.LowStockRowDTO, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.LowStockRowDTO, error) {
		var item dto.LowStockRowDTO
		err := row.Scan(&item.CodigoLote, &item.NombreProducto, &item.CantidadLote, &item.FechaEntrada.Time, &item.NombreUsuario)
		return item, err
	})
}

const expiredSelect = `
	SELECT
	    l.codigo,
	    p.nombre,
	    l.cantidad,
	    l.fecha_entrada,
	    u.nombre,
	    p.dias_para_vencimiento,
	    ($1::date - l.fecha_entrada) - p.dias_para_vencimiento AS dias_desde_vencimiento
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	JOIN usuario   u ON u.id = l.id_usuario
	WHERE ($1::date - l.fecha_entrada) > p.dias_para_vencimiento`

// Expired lotes vencidos, los más antiguos primero.
func (r *InventoryRepo) Expired(ctx context.Context, today time.Time) ([]dto.ExpiredRowDTO, error) {
	return r.expired(ctx, "inventario.Expired", expiredSelect+`
	ORDER BY dias_desde_vencimiento DESC, l.codigo`, today)
}

// RecentExpired últimos limit lotes vencidos por código descendente.
func (r *InventoryRepo) RecentExpired(ctx context.Context, today time.Time, limit int) ([]dto.ExpiredRowDTO, error) {
	return r.expired(ctx, "inventario.RecentExpired", expiredSelect+`
	ORDER BY l.codigo DESC
	LIMIT $2`, today, limit)
}

func (r *InventoryRepo) expired(ctx context.Context, op, query string, args ...any) ([]dto.ExpiredRowDTO, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.ExpiredRowDTO, error) {
		var item dto.ExpiredRowDTO
		err := row.Scan(
			&item.CodigoLote,
			&item.NombreProducto,
			&item.CantidadLote,
			&item.FechaEntrada.Time,
			&item.NombreUsuario,
			&item.DiasParaVencimiento,
			&item.DiasDesdeVencimiento,
		)
		return item, err
	})
}

// collect recorre rows con scan y cierra el cursor. Nunca devuelve un slice nil.
func collect[T any](op string, rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	results := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, storeError(op+" scan", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op+" rows", err)
	}
	return results, nil
}
