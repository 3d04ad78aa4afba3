package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/infrastructure/xlsx"
)

func TestExportInventory_EncabezadoYFilas(t *testing.T) {
	rows := []dto.InventoryRowDTO{
		{
			CodigoLote:          "00000001",
			CantidadLote:        8,
			FechaEntrada:        dto.Date{Time: time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC)},
			NombreUsuario:       "Ana",
			NombreProducto:      "Manzana",
			PrecioProducto:      decimal.RequireFromString("2.5"),
			DiasParaVencimiento: 5,
			Estado:              "vencido",
		},
	}

	content, err := xlsx.NewInventoryExporter().ExportInventory(rows, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2)

	assert.Equal(t, "Código lote", got[0][0])
	assert.Equal(t, "Estado", got[0][7])
	assert.Equal(t, []string{"00000001", "8", "2026-10-09", "Ana", "Manzana", "2.5", "5", "vencido"}, got[1])
	assert.Equal(t, "Generado: 2026-10-15", got[len(got)-1][0])
}

func TestExportInventory_SinFilas(t *testing.T) {
	content, err := xlsx.NewInventoryExporter().ExportInventory(nil, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	assert.Len(t, got[0], len(xlsx.Header))
}
