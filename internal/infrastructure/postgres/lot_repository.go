package postgres

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo persistencia de lotes sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create inserta un lote y devuelve su código. Sin código explícito se usa siguiente_codigo_lote().
// La fecha viaja como texto y la convierte el almacén, que rechaza fechas mal formadas.
func (r *LotRepo) Create(ctx context.Context, in repository.CreateLotParams) (string, error) {
	const query = `
		INSERT INTO lote (codigo, fecha_entrada, id_usuario, id_productos, cantidad)
		VALUES (COALESCE($1, siguiente_codigo_lote()), CAST($2::text AS date), $3, $4, $5)
		RETURNING codigo`
	var codigo string
	err := r.q.QueryRow(ctx, query, in.Codigo, in.FechaEntrada, in.IDUsuario, in.IDProductos, in.Cantidad).Scan(&codigo)
	if err != nil {
		return "", storeError("insert lote", err)
	}
	return codigo, nil
}

// Update reemplaza producto y cantidad del lote. Devuelve las filas afectadas.
func (r *LotRepo) Update(ctx context.Context, codigo string, in repository.UpdateLotParams) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE lote SET id_productos = $1, cantidad = $2 WHERE codigo = $3`,
		in.IDProductos, in.Cantidad, codigo,
	)
	if err != nil {
		return 0, storeError("update lote", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina el lote. Devuelve las filas afectadas (0 si no existía).
func (r *LotRepo) Delete(ctx context.Context, codigo string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM lote WHERE codigo = $1`, codigo)
	if err != nil {
		return 0, storeError("delete lote", err)
	}
	return cmd.RowsAffected(), nil
}

// ListRecent últimos limit lotes por código descendente, con el nombre del producto.
func (r *LotRepo) ListRecent(ctx context.Context, limit int) ([]dto.RecentLotDTO, error) {
	const query = `
		SELECT l.codigo, l.cantidad, l.fecha_entrada, p.nombre
		FROM lote l
		JOIN productos p ON p.id = l.id_productos
		ORDER BY l.codigo DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("list lotes recientes", err)
	}
	defer rows.Close()

	list := []dto.RecentLotDTO{}
	for rows.Next() {
		var row dto.RecentLotDTO
		if err := rows.Scan(&row.CodigoLote, &row.CantidadLote, &row.FechaEntrada.Time, &row.NombreProducto); err != nil {
			return nil, storeError("scan lote reciente", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list lotes recientes", err)
	}
	return list, nil
}
