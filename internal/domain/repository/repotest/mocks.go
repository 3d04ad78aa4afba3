// Package repotest implementaciones en memoria de los repositorios para tests.
// Cada método delega en su campo función; si el campo es nil devuelve el valor cero.
package repotest

import (
	"context"
	"time"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/entity"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.LotRepository          = (*LotRepo)(nil)
	_ repository.InventoryRepository    = (*InventoryRepo)(nil)
	_ repository.ReportRepository       = (*ReportRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

type ProductRepo struct {
	CreateFn      func(ctx context.Context, in repository.CreateProductParams) (int64, error)
	GetIDByNameFn func(ctx context.Context, nombre string) (int64, error)
	ListFn        func(ctx context.Context) ([]*entity.Product, error)
	ListRecentFn  func(ctx context.Context, limit int) ([]*entity.Product, error)
}

func (m *ProductRepo) Create(ctx context.Context, in repository.CreateProductParams) (int64, error) {
	if m.CreateFn == nil {
		return 0, nil
	}
	return m.CreateFn(ctx, in)
}

func (m *ProductRepo) GetIDByName(ctx context.Context, nombre string) (int64, error) {
	if m.GetIDByNameFn == nil {
		return 0, nil
	}
	return m.GetIDByNameFn(ctx, nombre)
}

func (m *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx)
}

func (m *ProductRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	if m.ListRecentFn == nil {
		return nil, nil
	}
	return m.ListRecentFn(ctx, limit)
}

type UserRepo struct {
	ListFn func(ctx context.Context) ([]*entity.User, error)
}

func (m *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx)
}

type LotRepo struct {
	CreateFn     func(ctx context.Context, in repository.CreateLotParams) (string, error)
	UpdateFn     func(ctx context.Context, codigo string, in repository.UpdateLotParams) (int64, error)
	DeleteFn     func(ctx context.Context, codigo string) (int64, error)
	ListRecentFn func(ctx context.Context, limit int) ([]dto.RecentLotDTO, error)
}

func (m *LotRepo) Create(ctx context.Context, in repository.CreateLotParams) (string, error) {
	if m.CreateFn == nil {
		return "", nil
	}
	return m.CreateFn(ctx, in)
}

func (m *LotRepo) Update(ctx context.Context, codigo string, in repository.UpdateLotParams) (int64, error) {
	if m.UpdateFn == nil {
		return 0, nil
	}
	return m.UpdateFn(ctx, codigo, in)
}

func (m *LotRepo) Delete(ctx context.Context, codigo string) (int64, error) {
	if m.DeleteFn == nil {
		return 0, nil
	}
	return m.DeleteFn(ctx, codigo)
}

func (m *LotRepo) ListRecent(ctx context.Context, limit int) ([]dto.RecentLotDTO, error) {
	if m.ListRecentFn == nil {
		return nil, nil
	}
	return m.ListRecentFn(ctx, limit)
}

type InventoryRepo struct {
	ListFn           func(ctx context.Context) ([]dto.InventoryRowDTO, error)
	SearchFn         func(ctx context.Context, term string) ([]dto.InventoryRowDTO, error)
	NearExpiryFn     func(ctx context.Context, today time.Time, window int) ([]dto.NearExpiryRowDTO, error)
	LowStockFn       func(ctx context.Context, threshold int) ([]dto.LowStockRowDTO, error)
	LowStockSearchFn func(ctx context.Context, threshold int, term string) ([]dto.LowStockRowDTO, error)
	ExpiredFn        func(ctx context.Context, today time.Time) ([]dto.ExpiredRowDTO, error)
	RecentExpiredFn  func(ctx context.Context, today time.Time, limit int) ([]dto.ExpiredRowDTO, error)
}

func (m *InventoryRepo) List(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx)
}

func (m *InventoryRepo) Search(ctx context.Context, term string) ([]dto.InventoryRowDTO, error) {
	if m.SearchFn == nil {
		return nil, nil
	}
	return m.SearchFn(ctx, term)
}

func (m *InventoryRepo) NearExpiry(ctx context.Context, today time.Time, window int) ([]dto.NearExpiryRowDTO, error) {
	if m.NearExpiryFn == nil {
		return nil, nil
	}
	return m.NearExpiryFn(ctx, today, window)
}

func (m *InventoryRepo) LowStock(ctx context.Context, threshold int) ([]dto.LowStockRowDTO, error) {
	if m.LowStockFn == nil {
		return nil, nil
	}
	return m.LowStockFn(ctx, threshold)
}

func (m *InventoryRepo) LowStockSearch(ctx context.Context, threshold int, term string) ([]dto.LowStockRowDTO, error) {
	if m.LowStockSearchFn == nil {
		return nil, nil
	}
	return m.LowStockSearchFn(ctx, threshold, term)
}

func (m *InventoryRepo) Expired(ctx context.Context, today time.Time) ([]dto.ExpiredRowDTO, error) {
	if m.ExpiredFn == nil {
		return nil, nil
	}
	return m.ExpiredFn(ctx, today)
}

func (m *InventoryRepo) RecentExpired(ctx context.Context, today time.Time, limit int) ([]dto.ExpiredRowDTO, error) {
	if m.RecentExpiredFn == nil {
		return nil, nil
	}
	return m.RecentExpiredFn(ctx, today, limit)
}

type ReportRepo struct {
	MostMovedFn func(ctx context.Context, limit int) ([]dto.MostMovedDTO, error)
	TopUsersFn  func(ctx context.Context, limit int) ([]dto.TopUserDTO, error)
}

func (m *ReportRepo) MostMoved(ctx context.Context, limit int) ([]dto.MostMovedDTO, error) {
	if m.MostMovedFn == nil {
		return nil, nil
	}
	return m.MostMovedFn(ctx, limit)
}

func (m *ReportRepo) TopUsers(ctx context.Context, limit int) ([]dto.TopUserDTO, error) {
	if m.TopUsersFn == nil {
		return nil, nil
	}
	return m.TopUsersFn(ctx, limit)
}

type NotificationRepo struct {
	NearestExpiryFn    func(ctx context.Context, today time.Time) (*dto.NearestExpiryDTO, error)
	ExpiringTodayFn    func(ctx context.Context, today time.Time) (*dto.ExpiringTodayDTO, error)
	CountLotsEnteredFn func(ctx context.Context, day time.Time) (int, error)
}

func (m *NotificationRepo) NearestExpiry(ctx context.Context, today time.Time) (*dto.NearestExpiryDTO, error) {
	if m.NearestExpiryFn == nil {
		return nil, nil
	}
	return m.NearestExpiryFn(ctx, today)
}

func (m *NotificationRepo) ExpiringToday(ctx context.Context, today time.Time) (*dto.ExpiringTodayDTO, error) {
	if m.ExpiringTodayFn == nil {
		return nil, nil
	}
	return m.ExpiringTodayFn(ctx, today)
}

func (m *NotificationRepo) CountLotsEntered(ctx context.Context, day time.Time) (int, error) {
	if m.CountLotsEnteredFn == nil {
		return 0, nil
	}
	return m.CountLotsEnteredFn(ctx, day)
}
