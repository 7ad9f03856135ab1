package repository

import (
	"context"
	"time"

	"github.com/Khosrovf/Khosro8/internal/domain/entity"
)

// TransactionFilter filtros opcionales para el listado de transacciones.
type TransactionFilter struct {
	ItemID *int64
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// TransactionRepository puerto de persistencia para transacciones de inventario.
type TransactionRepository interface {
	// Create inserta la transacción y asigna el ID generado.
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	// GetByIDForUpdate obtiene la transacción bloqueando su fila (SELECT FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error)
	// UpdateStatus cambia el estado (approved -> voided/cancelled).
	UpdateStatus(ctx context.Context, id int64, status string) error
	// ListWithItem lista transacciones unidas con el nombre del artículo,
	// ordenadas por fecha descendente (la más reciente primero).
	ListWithItem(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithItem, error)
}
