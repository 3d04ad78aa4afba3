package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fruver-api/internal/application/dto"
)

// NotificationRepository las tres consultas independientes del agregador de notificaciones.
type NotificationRepository interface {
	// NearestExpiry producto con el mínimo de días restantes estrictamente positivos; nil si no hay.
	NearestExpiry(ctx context.Context, today time.Time) (*dto.NearestExpiryDTO, error)
	// ExpiringToday primer producto con días transcurridos == vida útil; nil si no hay.
	ExpiringToday(ctx context.Context, today time.Time) (*dto.ExpiringTodayDTO, error)
	// CountLotsEntered lotes con fecha de entrada igual a day.
	CountLotsEntered(ctx context.Context, day time.Time) (int, error)
}
