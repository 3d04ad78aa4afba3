// Package xlsx exporta el inventario a hojas de cálculo con excelize.
package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/application/ports"
)

var _ ports.InventoryExporter = (*InventoryExporter)(nil)

// SheetName nombre de la hoja con el inventario.
const SheetName = "Inventario"

// Header columnas de la hoja, en el mismo orden que las filas.
var Header = []any{
	"Código lote", "Cantidad", "Fecha entrada", "Usuario",
	"Producto", "Precio", "Días para vencimiento", "Estado",
}

// InventoryExporter genera un XLSX con una fila por lote.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter {
	return &InventoryExporter{}
}

// ContentType MIME de XLSX.
func (e *InventoryExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension extensión del archivo.
func (e *InventoryExporter) FileExtension() string {
	return "xlsx"
}

// ExportInventory escribe encabezado, filas y la fecha de generación en una hoja.
func (e *InventoryExporter) ExportInventory(rows []dto.InventoryRowDTO, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("estilo encabezado: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "H1", bold); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.CodigoLote,
			r.CantidadLote,
			r.FechaEntrada.String(),
			r.NombreUsuario,
			r.NombreProducto,
			r.PrecioProducto.InexactFloat64(),
			r.DiasParaVencimiento,
			r.Estado,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	footer, err := excelize.CoordinatesToCellName(1, len(rows)+3)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, footer, "Generado: "+generatedAt.Format(dto.DateLayout)); err != nil {
		return nil, fmt.Errorf("escribir pie: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "H", 18); err != nil {
		return nil, fmt.Errorf("ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
