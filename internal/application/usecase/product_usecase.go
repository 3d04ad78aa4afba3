package usecase

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain/entity"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. No hay modificación ni borrado expuestos.
type ProductUseCase struct {
	repo        repository.ProductRepository
	recentLimit int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recentLimit int) *ProductUseCase {
	return &ProductUseCase{repo: repo, recentLimit: recentLimit}
}

// Create registra un producto y devuelve el id generado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	id, err := uc.repo.Create(ctx, repository.CreateProductParams{
		Nombre:              in.Nombre,
		Precio:              in.Precio,
		DiasParaVencimiento: in.DiasParaVencimiento,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{
		AckResponse: dto.AckResponse{Success: true, Message: "Producto añadido exitosamente."},
		ID:          id,
	}, nil
}

// GetIDByName devuelve el id del producto con ese nombre exacto o domain.ErrNotFound.
func (uc *ProductUseCase) GetIDByName(ctx context.Context, nombre string) (*dto.ProductIDResponse, error) {
	id, err := uc.repo.GetIDByName(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return &dto.ProductIDResponse{ID: id}, nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListRecent últimos productos por id descendente.
func (uc *ProductUseCase) ListRecent(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListRecent(ctx, uc.recentLimit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:                  p.ID,
			Nombre:              p.Nombre,
			Precio:              p.Precio,
			DiasParaVencimiento: p.DiasParaVencimiento,
		})
	}
	return items
}
