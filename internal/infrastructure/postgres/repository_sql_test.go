package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-api/internal/domain"
	"github.com/jhoicas/fruver-api/internal/infrastructure/postgres"
)

var sqlToday = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// sqlFragment compara un fragmento literal del SQL (sin interpretar $ ni paréntesis).
func sqlFragment(s string) string {
	return regexp.QuoteMeta(s)
}

var lotCols = []string{"codigo", "nombre", "cantidad", "fecha_entrada", "nombre_usuario"}

func TestInventoryRepo_LowStockUmbralInclusivo(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE l.cantidad <= $1")).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(lotCols).
			AddRow("00000001", "Manzana", 10, sqlToday.AddDate(0, 0, -6), "Ana"))

	rows, err := postgres.NewInventoryRepository(mock).LowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].CantidadLote)
	assert.Equal(t, "2026-10-09", rows[0].FechaEntrada.String())
}

func TestInventoryRepo_LowStockSearchEscapaTermino(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("AND (p.nombre ILIKE $2 OR u.nombre ILIKE $2)")).
		WithArgs(10, `%50\%%`).
		WillReturnRows(pgxmock.NewRows(lotCols))

	rows, err := postgres.NewInventoryRepository(mock).LowStockSearch(context.Background(), 10, "50%")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestInventoryRepo_SearchPorCodigoOProducto(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE l.codigo ILIKE $1 OR p.nombre ILIKE $1")).
		WithArgs(`%L\_1%`).
		WillReturnRows(pgxmock.NewRows([]string{
			"codigo_lote", "cantidad_lote", "fecha_entrada", "nombre_usuario",
			"nombre_producto", "precio_producto", "dias_para_vencimiento",
		}))

	_, err := postgres.NewInventoryRepository(mock).Search(context.Background(), "L_1")
	require.NoError(t, err)
}

func TestInventoryRepo_NearExpiryVentanaDesdeCero(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE p.dias_para_vencimiento - ($1::date - l.fecha_entrada) BETWEEN 0 AND $2")).
		WithArgs(sqlToday, 3).
		WillReturnRows(pgxmock.NewRows(append(lotCols, "dias_para_vencimiento", "dias_restantes")).
			AddRow("00000002", "Pera", 11, sqlToday.AddDate(0, 0, -5), "Ana", 5, 0).
			AddRow("00000003", "Mango", 40, sqlToday.AddDate(0, 0, -3), "Ana", 6, 3))

	rows, err := postgres.NewInventoryRepository(mock).NearExpiry(context.Background(), sqlToday, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].DiasRestantes)
	assert.Equal(t, 3, rows[1].DiasRestantes)
}

func TestInventoryRepo_ExpiredEstricto(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE ($1::date - l.fecha_entrada) > p.dias_para_vencimiento")).
		WithArgs(sqlToday).
		WillReturnRows(pgxmock.NewRows(append(lotCols, "dias_para_vencimiento", "dias_desde_vencimiento")).
			AddRow("00000001", "Manzana", 10, sqlToday.AddDate(0, 0, -6), "Ana", 5, 1))

	rows, err := postgres.NewInventoryRepository(mock).Expired(context.Background(), sqlToday)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].DiasDesdeVencimiento)
}

func TestInventoryRepo_RecentExpiredLimite(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("ORDER BY l.codigo DESC\n\tLIMIT $2")).
		WithArgs(sqlToday, 5).
		WillReturnRows(pgxmock.NewRows(append(lotCols, "dias_para_vencimiento", "dias_desde_vencimiento")))

	_, err := postgres.NewInventoryRepository(mock).RecentExpired(context.Background(), sqlToday, 5)
	require.NoError(t, err)
}

func TestInventoryRepo_ErrorDelDriver(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("FROM lote l")).WillReturnError(errors.New("conexión rechazada"))

	_, err := postgres.NewInventoryRepository(mock).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestNotificationRepo_MasCercanoSoloPositivos(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE p.dias_para_vencimiento - ($1::date - l.fecha_entrada) > 0")).
		WithArgs(sqlToday).
		WillReturnRows(pgxmock.NewRows([]string{"nombre", "dias_restantes"}).AddRow("Mango", 3))

	out, err := postgres.NewNotificationRepository(mock).NearestExpiry(context.Background(), sqlToday)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 3, out.DiasRestantes)
}

func TestNotificationRepo_ExpiraHoySinFilasEsNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("WHERE ($1::date - l.fecha_entrada) = p.dias_para_vencimiento")).
		WithArgs(sqlToday).
		WillReturnRows(pgxmock.NewRows([]string{"nombre"}))

	out, err := postgres.NewNotificationRepository(mock).ExpiringToday(context.Background(), sqlToday)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNotificationRepo_CuentaLotesDelDia(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("SELECT COUNT(*) FROM lote WHERE fecha_entrada = $1::date")).
		WithArgs(sqlToday).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := postgres.NewNotificationRepository(mock).CountLotsEntered(context.Background(), sqlToday)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReportRepo_MostMovedAgrupaPorProductoYUsuario(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("GROUP BY p.id, p.nombre, p.precio, u.id, u.nombre")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"nombre_producto", "precio_producto", "total_cantidad", "usuario_principal"}))

	rows, err := postgres.NewReportRepository(mock).MostMoved(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, rows)
}

func TestReportRepo_TopUsersLimite(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("COUNT(l.codigo)")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"nombre_usuario", "total_lotes_ingresados"}).AddRow("Ana", int64(4)))

	rows, err := postgres.NewReportRepository(mock).TopUsers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(4), rows[0].TotalLotesIngresados)
}

func TestProductRepo_NombreInexistente(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(sqlFragment("SELECT id FROM productos WHERE nombre = $1")).
		WithArgs("Nada").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := postgres.NewProductRepository(mock).GetIDByName(context.Background(), "Nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLotRepo_DeleteSinFilas(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(sqlFragment("DELETE FROM lote WHERE codigo = $1")).
		WithArgs("99999999").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := postgres.NewLotRepository(mock).Delete(context.Background(), "99999999")
	require.NoError(t, err)
	assert.Zero(t, n)
}
