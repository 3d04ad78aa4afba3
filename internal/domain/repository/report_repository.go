package repository

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
)

// ReportRepository consultas agregadas de solo lectura.
type ReportRepository interface {
	// MostMoved suma cantidades agrupando por (producto, usuario) y devuelve las limit mayores.
	MostMoved(ctx context.Context, limit int) ([]dto.MostMovedDTO, error)
	// TopUsers cuenta lotes por usuario y devuelve los limit mayores.
	TopUsers(ctx context.Context, limit int) ([]dto.TopUserDTO, error)
}
