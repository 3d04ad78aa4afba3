package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/application/usecase"
	"github.com/jhoicas/fruver-api/internal/domain"
	"github.com/jhoicas/fruver-api/internal/domain/entity"
	"github.com/jhoicas/fruver-api/internal/domain/expiry"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
	"github.com/jhoicas/fruver-api/internal/domain/repository/repotest"
	"github.com/jhoicas/fruver-api/pkg/logger"
)

var today = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func day(d int) dto.Date {
	return dto.Date{Time: time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)}
}

type stubExporter struct {
	err error
}

func (s stubExporter) ExportInventory(rows []dto.InventoryRowDTO, _ time.Time) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte{byte(len(rows))}, nil
}
func (stubExporter) ContentType() string   { return "text/test" }
func (stubExporter) FileExtension() string { return "bin" }

func TestInventoryUseCase_ListAnotaEstado(t *testing.T) {
	repo := &repotest.InventoryRepo{
		ListFn: func(context.Context) ([]dto.InventoryRowDTO, error) {
			return []dto.InventoryRowDTO{
				{CodigoLote: "1", FechaEntrada: day(15), DiasParaVencimiento: 10}, // 10 restantes
				{CodigoLote: "2", FechaEntrada: day(13), DiasParaVencimiento: 5},  // 3 restantes
				{CodigoLote: "3", FechaEntrada: day(10), DiasParaVencimiento: 5},  // 0 restantes
				{CodigoLote: "4", FechaEntrada: day(9), DiasParaVencimiento: 5},   // vencido
			}, nil
		},
	}
	uc := usecase.NewInventoryUseCase(repo, stubExporter{}, expiry.DefaultRules(), fixedClock)

	rows, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, string(expiry.StatusFresh), rows[0].Estado)
	assert.Equal(t, string(expiry.StatusNearExpiry), rows[1].Estado)
	assert.Equal(t, string(expiry.StatusNearExpiry), rows[2].Estado)
	assert.Equal(t, string(expiry.StatusExpired), rows[3].Estado)
}

func TestInventoryUseCase_SearchVacioEsSliceVacio(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&repotest.InventoryRepo{}, stubExporter{}, expiry.DefaultRules(), fixedClock)

	rows, err := uc.Search(context.Background(), "nada")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestInventoryUseCase_ExportNombreYTipo(t *testing.T) {
	repo := &repotest.InventoryRepo{
		ListFn: func(context.Context) ([]dto.InventoryRowDTO, error) {
			return []dto.InventoryRowDTO{{CodigoLote: "1", FechaEntrada: day(15)}}, nil
		},
	}
	uc := usecase.NewInventoryUseCase(repo, stubExporter{}, expiry.DefaultRules(), fixedClock)

	content, contentType, filename, err := uc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, content)
	assert.Equal(t, "text/test", contentType)
	assert.Equal(t, "inventario_2026-10-15.bin", filename)
}

func TestInventoryUseCase_ExportFallaExportador(t *testing.T) {
	boom := errors.New("disco lleno")
	uc := usecase.NewInventoryUseCase(&repotest.InventoryRepo{}, stubExporter{err: boom}, expiry.DefaultRules(), fixedClock)

	_, _, _, err := uc.Export(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAlertUseCase_ParametrosConfigurables(t *testing.T) {
	var gotWindow, gotThreshold, gotLimit int
	var gotToday time.Time
	repo := &repotest.InventoryRepo{
		NearExpiryFn: func(_ context.Context, d time.Time, window int) ([]dto.NearExpiryRowDTO, error) {
			gotToday, gotWindow = d, window
			return nil, nil
		},
		LowStockFn: func(_ context.Context, threshold int) ([]dto.LowStockRowDTO, error) {
			gotThreshold = threshold
			return nil, nil
		},
		RecentExpiredFn: func(_ context.Context, _ time.Time, limit int) ([]dto.ExpiredRowDTO, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	uc := usecase.NewAlertUseCase(repo, expiry.Rules{NearExpiryDays: 7, LowStockThreshold: 25}, fixedClock, 3)
	ctx := context.Background()

	near, err := uc.NearExpiry(ctx)
	require.NoError(t, err)
	assert.NotNil(t, near)
	assert.Equal(t, 7, gotWindow)
	assert.True(t, today.Equal(gotToday))

	_, err = uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, gotThreshold)

	_, err = uc.RecentExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, gotLimit)
}

func TestAlertUseCase_PropagaErrorDeAlmacen(t *testing.T) {
	repo := &repotest.InventoryRepo{
		ExpiredFn: func(context.Context, time.Time) ([]dto.ExpiredRowDTO, error) {
			return nil, fmt.Errorf("inventory.Expired: %w", domain.ErrStoreUnavailable)
		},
	}
	uc := usecase.NewAlertUseCase(repo, expiry.DefaultRules(), fixedClock, 5)

	rows, err := uc.Expired(context.Background())
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestLotUseCase_CeroFilasEsExitoYQuedaEnLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	repo := &repotest.LotRepo{
		UpdateFn: func(context.Context, string, repository.UpdateLotParams) (int64, error) { return 0, nil },
		DeleteFn: func(context.Context, string) (int64, error) { return 0, nil },
	}
	uc := usecase.NewLotUseCase(repo, log, 5)

	up, err := uc.Update(context.Background(), "00000099", dto.UpdateLotRequest{})
	require.NoError(t, err)
	assert.True(t, up.Success)
	assert.Equal(t, "Lote actualizado exitosamente.", up.Message)

	del, err := uc.Delete(context.Background(), "00000099")
	require.NoError(t, err)
	assert.True(t, del.Success)
	assert.Equal(t, "Lote eliminado exitosamente.", del.Message)

	assert.Contains(t, buf.String(), `"codigoLote":"00000099"`)
	assert.Contains(t, buf.String(), `"component":"lotes"`)
}

func TestLotUseCase_CreateDevuelveCodigo(t *testing.T) {
	codigo := "ABC"
	var got repository.CreateLotParams
	repo := &repotest.LotRepo{
		CreateFn: func(_ context.Context, in repository.CreateLotParams) (string, error) {
			got = in
			return *in.Codigo, nil
		},
	}
	uc := usecase.NewLotUseCase(repo, logger.Nop(), 5)

	out, err := uc.Create(context.Background(), dto.CreateLotRequest{Codigo: &codigo})
	require.NoError(t, err)
	assert.Equal(t, "ABC", out.CodigoLote)
	assert.Equal(t, "Lote añadido exitosamente.", out.Message)
	assert.Nil(t, got.Cantidad, "los campos ausentes llegan como nil")
}

func TestProductUseCase_NoEncontradoSePropaga(t *testing.T) {
	repo := &repotest.ProductRepo{
		GetIDByNameFn: func(context.Context, string) (int64, error) {
			return 0, fmt.Errorf("product.GetIDByName: %w", domain.ErrNotFound)
		},
	}
	uc := usecase.NewProductUseCase(repo, 5)

	out, err := uc.GetIDByName(context.Background(), "Kiwi")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListRecentUsaLimite(t *testing.T) {
	var gotLimit int
	repo := &repotest.ProductRepo{
		ListRecentFn: func(_ context.Context, limit int) ([]*entity.Product, error) {
			gotLimit = limit
			return []*entity.Product{{ID: 9, Nombre: "Mango", DiasParaVencimiento: 4}}, nil
		},
	}
	uc := usecase.NewProductUseCase(repo, 5)

	out, err := uc.ListRecent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "Mango", out[0].Nombre)
}

func TestUserUseCase_ListVacio(t *testing.T) {
	out, err := usecase.NewUserUseCase(&repotest.UserRepo{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestReportUseCase_LimiteYVacio(t *testing.T) {
	var gotLimit int
	repo := &repotest.ReportRepo{
		MostMovedFn: func(_ context.Context, limit int) ([]dto.MostMovedDTO, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	uc := usecase.NewReportUseCase(repo, 5)

	rows, err := uc.MostMoved(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	assert.NotNil(t, rows)
}
