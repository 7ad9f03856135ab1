package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción y asigna el ID generado.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (item_id, type, status, number, date, quantity, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		t.ItemID, t.Type, t.Status, t.Number, t.Date, t.Quantity, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

const txColumns = `id, item_id, type, status, number, date, quantity, notes, created_at`

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene la transacción bloqueando su fila (SELECT FOR UPDATE).
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	return r.get(ctx, id, true)
}

func (r *TransactionRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ItemID, &t.Type, &t.Status, &t.Number, &t.Date,
		&t.Quantity, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// UpdateStatus cambia el estado de la transacción (approved -> voided/cancelled).
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE transactions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithItem lista transacciones unidas con nombre y unidad del artículo,
// ordenadas por fecha descendente. Filtros opcionales por artículo y rango de
// fechas; paginación con limit/offset.
func (r *TransactionRepo) ListWithItem(ctx context.Context, filter repository.TransactionFilter) ([]*entity.TransactionWithItem, error) {
	query := `
		SELECT t.id, t.item_id, t.type, t.status, t.number, t.date, t.quantity, t.notes, t.created_at,
		       i.name, i.unit
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != nil {
		query += fmt.Sprintf(" AND t.item_id = $%d", pos)
		args = append(args, *filter.ItemID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY t.date DESC, t.id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.TransactionWithItem
	for rows.Next() {
		var t entity.TransactionWithItem
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Type, &t.Status, &t.Number, &t.Date,
			&t.Quantity, &t.Notes, &t.CreatedAt, &t.ItemName, &t.ItemUnit); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
