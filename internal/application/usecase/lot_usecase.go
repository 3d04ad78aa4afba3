package usecase

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
	"github.com/jhoicas/fruver-api/pkg/logger"
)

// LotUseCase alta, cambio y baja de lotes.
// Update y Delete responden éxito aunque ningún lote coincida; solo queda registrado en el log.
type LotUseCase struct {
	repo        repository.LotRepository
	log         *logger.Logger
	recentLimit int
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, log *logger.Logger, recentLimit int) *LotUseCase {
	return &LotUseCase{repo: repo, log: log.Component("lotes"), recentLimit: recentLimit}
}

// Create registra un lote y devuelve el código asignado.
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.CreateLotResponse, error) {
	codigo, err := uc.repo.Create(ctx, repository.CreateLotParams{
		Codigo:       in.Codigo,
		FechaEntrada: in.FechaEntrada,
		IDUsuario:    in.IDUsuario,
		IDProductos:  in.IDProductos,
		Cantidad:     in.Cantidad,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateLotResponse{
		AckResponse: dto.AckResponse{Success: true, Message: "Lote añadido exitosamente."},
		CodigoLote:  codigo,
	}, nil
}

// Update reemplaza el producto y la cantidad del lote codigo.
func (uc *LotUseCase) Update(ctx context.Context, codigo string, in dto.UpdateLotRequest) (*dto.AckResponse, error) {
	affected, err := uc.repo.Update(ctx, codigo, repository.UpdateLotParams{
		IDProductos: in.IDProductos,
		Cantidad:    in.CantidadLote,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		uc.log.Warn().Str("codigoLote", codigo).Msg("actualización sin lote coincidente")
	}
	return &dto.AckResponse{Success: true, Message: "Lote actualizado exitosamente."}, nil
}

// Delete elimina el lote codigo. Es idempotente: borrar un código inexistente no es error.
func (uc *LotUseCase) Delete(ctx context.Context, codigo string) (*dto.AckResponse, error) {
	affected, err := uc.repo.Delete(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		uc.log.Debug().Str("codigoLote", codigo).Msg("eliminación sin lote coincidente")
	}
	return &dto.AckResponse{Success: true, Message: "Lote eliminado exitosamente."}, nil
}

// ListRecent últimos lotes por código descendente.
func (uc *LotUseCase) ListRecent(ctx context.Context) ([]dto.RecentLotDTO, error) {
	return nonNil(uc.repo.ListRecent(ctx, uc.recentLimit))
}
