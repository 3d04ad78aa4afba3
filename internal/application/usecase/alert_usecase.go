package usecase

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/expiry"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

// AlertUseCase alertas de vencimiento y bajo stock.
// La ventana de "por vencer" y el umbral de bajo stock vienen de expiry.Rules (configurables).
type AlertUseCase struct {
	repo        repository.InventoryRepository
	rules       expiry.Rules
	today       expiry.Clock
	recentLimit int
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.InventoryRepository, rules expiry.Rules, today expiry.Clock, recentLimit int) *AlertUseCase {
	return &AlertUseCase{repo: repo, rules: rules, today: today, recentLimit: recentLimit}
}

// NearExpiry lotes con 0..NearExpiryDays días de vida útil restantes.
func (uc *AlertUseCase) NearExpiry(ctx context.Context) ([]dto.NearExpiryRowDTO, error) {
	return nonNil(uc.repo.NearExpiry(ctx, uc.today(), uc.rules.NearExpiryDays))
}

// LowStock lotes con cantidad <= LowStockThreshold.
func (uc *AlertUseCase) LowStock(ctx context.Context) ([]dto.LowStockRowDTO, error) {
	return nonNil(uc.repo.LowStock(ctx, uc.rules.LowStockThreshold))
}

// LowStockSearch lotes en bajo stock cuyo producto o usuario contiene term.
func (uc *AlertUseCase) LowStockSearch(ctx context.Context, term string) ([]dto.LowStockRowDTO, error) {
	return nonNil(uc.repo.LowStockSearch(ctx, uc.rules.LowStockThreshold, term))
}

// Expired lotes vencidos con los días transcurridos desde el vencimiento.
func (uc *AlertUseCase) Expired(ctx context.Context) ([]dto.ExpiredRowDTO, error) {
	return nonNil(uc.repo.Expired(ctx, uc.today()))
}

// RecentExpired los últimos lotes vencidos por código descendente.
func (uc *AlertUseCase) RecentExpired(ctx context.Context) ([]dto.ExpiredRowDTO, error) {
	return nonNil(uc.repo.RecentExpired(ctx, uc.today(), uc.recentLimit))
}

// nonNil normaliza un resultado vacío a slice vacío para que el JSON sea [] y no null.
func nonNil[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
