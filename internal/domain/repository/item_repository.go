package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Khosrovf/Khosro8/internal/domain/entity"
)

// ItemRepository puerto de persistencia para artículos.
// Las implementaciones devuelven (nil, nil) cuando el artículo no existe.
type ItemRepository interface {
	// Create inserta el artículo y asigna el ID generado.
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// GetByIDForUpdate obtiene el artículo bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	// AdjustQuantity aplica un delta con signo sobre la existencia del artículo.
	AdjustQuantity(ctx context.Context, id int64, delta decimal.Decimal) error
	// List devuelve todos los artículos ordenados por id ascendente.
	List(ctx context.Context) ([]*entity.Item, error)
}
