package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo las tres consultas del agregador de notificaciones. Son independientes entre sí.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// NearestExpiry producto con el menor número de días restantes, contando solo valores > 0.
func (r *NotificationRepo) NearestExpiry(ctx context.Context, today time.Time) (*dto.NearestExpiryDTO, error) {
	const query = `
	SELECT
	    p.nombre,
	    MIN(p.dias_para_vencimiento - ($1::date - l.fecha_entrada)) AS dias_restantes
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	WHERE p.dias_para_vencimiento - ($1::date - l.fecha_entrada) > 0
	GROUP BY p.nombre
	ORDER BY dias_restantes ASC, p.nombre
	LIMIT 1`

	var out dto.NearestExpiryDTO
	err := r.q.QueryRow(ctx, query, today).Scan(&out.NombreProducto, &out.DiasRestantes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("notificaciones.NearestExpiry", err)
	}
	return &out, nil
}

// ExpiringToday primer producto (por código de lote) que cumple hoy su vida útil.
func (r *NotificationRepo) ExpiringToday(ctx context.Context, today time.Time) (*dto.ExpiringTodayDTO, error) {
	const query = `
	SELECT p.nombre
	FROM lote l
	JOIN productos p ON p.id = l.id_productos
	WHERE ($1::date - l.fecha_entrada) = p.dias_para_vencimiento
	ORDER BY l.codigo
	LIMIT 1`

	var out dto.ExpiringTodayDTO
	err := r.q.QueryRow(ctx, query, today).Scan(&out.NombreProducto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("notificaciones.ExpiringToday", err)
	}
	return &out, nil
}

// CountLotsEntered lotes cuya fecha de entrada es day.
func (r *NotificationRepo) CountLotsEntered(ctx context.Context, day time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM lote WHERE fecha_entrada = $1::date`, day).Scan(&n); err != nil {
		return 0, storeError("notificaciones.CountLotsEntered", err)
	}
	return n, nil
}
