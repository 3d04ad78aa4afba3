package ports

import (
	"time"

	"github.com/jhoicas/fruver-api/internal/application/dto"
)

// InventoryExporter define el puerto de salida para exportar el inventario a un archivo.
// La aplicación solo conoce este contrato; el adaptador decide el formato (hoy, XLSX).
type InventoryExporter interface {
	// ExportInventory serializa las filas del inventario; generatedAt se imprime en el archivo.
	ExportInventory(rows []dto.InventoryRowDTO, generatedAt time.Time) ([]byte, error)
	// ContentType tipo MIME del archivo generado.
	ContentType() string
	// FileExtension extensión (sin punto) del archivo generado.
	FileExtension() string
}
