package ledger

import (
	"context"
	"strings"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

// ItemUseCase altas y consultas de artículos. La existencia no se toca aquí:
// solo cambia registrando o anulando transacciones.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create da de alta un artículo con existencia 0. Falla con ErrInvalidInput
// si el nombre viene vacío (validación antes de tocar la BD).
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.Item{
		Name:     strings.TrimSpace(in.Name),
		Category: in.Category,
		Unit:     in.Unit,
		Price:    in.Price,
		Supplier: in.Supplier,
		Notes:    in.Notes,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// GetByID obtiene un artículo. Devuelve ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToItemResponse(item), nil
}

// List devuelve todos los artículos ordenados por id ascendente.
func (uc *ItemUseCase) List(ctx context.Context) ([]*dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		list = append(list, dto.ToItemResponse(it))
	}
	return list, nil
}
