package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
	"github.com/Khosrovf/Khosro8/pkg/jalali"
)

// TransactionUseCase registra y anula transacciones de inventario de forma
// transaccional. Invariante del libro: la existencia de cada artículo es
// siempre la suma con signo de sus transacciones aprobadas; por eso el insert
// del movimiento y el ajuste de existencia viajan en UNA transacción SQL con
// la fila del artículo bloqueada (SELECT FOR UPDATE).
type TransactionUseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso. txRepo va atado al pool y
// solo se usa para lecturas; las escrituras pasan por txRunner.
func NewTransactionUseCase(txRunner TxRunner, txRepo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{txRunner: txRunner, txRepo: txRepo}
}

// Record valida y registra un movimiento:
//  1. Quantity > 0 y tipo conocido (antes de cualquier viaje a la BD).
//  2. Dentro de una transacción SQL: bloquea la fila del artículo
//     (ErrNotFound si no existe), inserta la fila de la transacción y aplica
//     el delta con signo sobre items.quantity.
//  3. Commit; cualquier fallo revierte ambos pasos (ni fila huérfana ni
//     existencia desfasada).
func (uc *TransactionUseCase) Record(ctx context.Context, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := entity.TypeSign(in.Type); !ok {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now()
	switch {
	case in.Date != nil && !in.Date.IsZero():
		date = *in.Date
	case in.DateJalali != "":
		d, err := jalali.Parse(in.DateJalali)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = d
	}
	number := strings.TrimSpace(in.Number)
	if number == "" {
		// Referencia generada cuando el documento externo no trae número.
		number = "TRX-" + uuid.New().String()[:8]
	}

	tx := &entity.Transaction{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Status:   entity.TxStatusApproved,
		Number:   number,
		Date:     date,
		Quantity: in.Quantity,
		Notes:    in.Notes,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		// FOR UPDATE: serializa los movimientos concurrentes sobre el mismo
		// artículo y valida la referencia en el mismo paso.
		item, err := itemRepo.GetByIDForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return itemRepo.AdjustQuantity(ctx, in.ItemID, entity.SignedQuantity(in.Type, in.Quantity))
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(tx), nil
}

// Void anula una transacción aprobada: cambia el estado a voided y aplica el
// delta inverso sobre la existencia, todo en una transacción SQL. Devuelve
// ErrNotFound si la transacción no existe y ErrAlreadyVoided si ya no está
// aprobada (anular dos veces no duplica la reversión).
func (uc *TransactionUseCase) Void(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	var voided *entity.Transaction

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		tx, err := txRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if tx.Status != entity.TxStatusApproved {
			return domain.ErrAlreadyVoided
		}
		// Bloquea el artículo igual que Record: los ajustes sobre el mismo
		// artículo quedan linealizados.
		item, err := itemRepo.GetByIDForUpdate(ctx, tx.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := txRepo.UpdateStatus(ctx, id, entity.TxStatusVoided); err != nil {
			return err
		}
		if err := itemRepo.AdjustQuantity(ctx, tx.ItemID, entity.SignedQuantity(tx.Type, tx.Quantity).Neg()); err != nil {
			return err
		}
		tx.Status = entity.TxStatusVoided
		voided = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(voided), nil
}

// List devuelve transacciones unidas con el nombre del artículo, ordenadas por
// fecha descendente (la más reciente primero). Lectura pura: una sola consulta.
func (uc *TransactionUseCase) List(ctx context.Context, in dto.ListTransactionsRequest) ([]*dto.TransactionResponse, error) {
	in.DefaultPage()
	filter := repository.TransactionFilter{
		ItemID: in.ItemID,
		From:   in.From,
		To:     in.To,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	rows, err := uc.txRepo.ListWithItem(ctx, filter)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TransactionResponse, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.ToTransactionWithItemResponse(r))
	}
	return list, nil
}
