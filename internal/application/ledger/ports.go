package ledger

import (
	"context"

	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del par
// "insertar transacción + ajustar existencia": o se confirman ambos pasos
// o se revierte todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
