package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas para los reportes del tablero.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MostMoved suma la cantidad de los lotes por (producto, usuario).
// Un producto con lotes de varios usuarios ocupa varias posiciones del top.
func (r *ReportRepo) MostMoved(ctx context.Context, limit int) ([]dto.MostMovedDTO, error) {
	const query = `
	SELECT
	    p.nombre          AS nombre_producto,
	    p.precio          AS precio_producto,
	    SUM(l.cantidad)   AS total_cantidad,
	    u.nombre          AS usuario_principal
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	JOIN usuario   u ON u.id = l.id_usuario
	GROUP BY p.id, p.nombre, p.precio, u.id, u.nombre
	ORDER BY total_cantidad DESC, p.nombre
	LIMIT $1`

	const op = "reportes.MostMoved"
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.MostMovedDTO, error) {
		var item dto.MostMovedDTO
		err := row.Scan(&item.NombreProducto, &item.PrecioProducto, &item.TotalCantidad, &item.UsuarioPrincipal)
		return item, err
	})
}

// TopUsers cuenta los lotes ingresados por cada usuario.
func (r *ReportRepo) TopUsers(ctx context.Context, limit int) ([]dto.TopUserDTO, error) {
	const query = `
	SELECT
	    u.nombre          AS nombre_usuario,
	    COUNT(l.codigo)   AS total_lotes_ingresados
	FROM lote l
	JOIN usuario u ON u.id = l.id_usuario
	GROUP BY u.id, u.nombre
	ORDER BY total_lotes_ingresados DESC, u.nombre
	LIMIT $1`

	const op = "reportes.TopUsers"
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError(op, err)
	}
	return collect(op, rows, func(row pgx.Rows) (dto.TopUserDTO, error) {
		var item dto.TopUserDTO
		err := row.Scan(&item.NombreUsuario, &item.TotalLotesIngresados)
		return item, err
	})
}
