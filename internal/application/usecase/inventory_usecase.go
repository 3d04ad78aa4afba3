package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/application/ports"
	"github.com/jhoicas/fruver-api/internal/domain/expiry"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

// InventoryUseCase consulta y exporta el inventario (lotes con su usuario y producto).
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	exporter ports.InventoryExporter
	rules    expiry.Rules
	today    expiry.Clock
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	exporter ports.InventoryExporter,
	rules expiry.Rules,
	today expiry.Clock,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, exporter: exporter, rules: rules, today: today}
}

// List devuelve todo el inventario con el estado de vencimiento de cada lote.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.annotate(rows), nil
}

// Search devuelve los lotes cuyo código o nombre de producto contiene term.
// Un término vacío coincide con todo el inventario.
func (uc *InventoryUseCase) Search(ctx context.Context, term string) ([]dto.InventoryRowDTO, error) {
	rows, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return uc.annotate(rows), nil
}

// Export genera el archivo del inventario completo. Devuelve contenido, tipo MIME y nombre sugerido.
func (uc *InventoryUseCase) Export(ctx context.Context) ([]byte, string, string, error) {
	rows, err := uc.List(ctx)
	if err != nil {
		return nil, "", "", err
	}
	today := uc.today()
	content, err := uc.exporter.ExportInventory(rows, today)
	if err != nil {
		return nil, "", "", fmt.Errorf("exportar inventario: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.%s", today.Format(dto.DateLayout), uc.exporter.FileExtension())
	return content, uc.exporter.ContentType(), filename, nil
}

func (uc *InventoryUseCase) annotate(rows []dto.InventoryRowDTO) []dto.InventoryRowDTO {
	if rows == nil {
		return []dto.InventoryRowDTO{}
	}
	today := uc.today()
	for i := range rows {
		elapsed := expiry.DaysElapsed(rows[i].FechaEntrada.Time, today)
		rows[i].Estado = string(uc.rules.Classify(rows[i].DiasParaVencimiento, elapsed))
	}
	return rows
}
