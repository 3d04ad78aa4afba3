package usecase

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

// ReportUseCase reportes top-N del tablero.
type ReportUseCase struct {
	repo  repository.ReportRepository
	limit int
}

// NewReportUseCase construye el caso de uso; limit es el tamaño de cada top.
func NewReportUseCase(repo repository.ReportRepository, limit int) *ReportUseCase {
	return &ReportUseCase{repo: repo, limit: limit}
}

// MostMoved productos con mayor cantidad total ingresada, por (producto, usuario).
func (uc *ReportUseCase) MostMoved(ctx context.Context) ([]dto.MostMovedDTO, error) {
	return nonNil(uc.repo.MostMoved(ctx, uc.limit))
}

// TopUsers usuarios con más lotes ingresados.
func (uc *ReportUseCase) TopUsers(ctx context.Context) ([]dto.TopUserDTO, error) {
	return nonNil(uc.repo.TopUsers(ctx, uc.limit))
}
