package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, category, unit, quantity, price, supplier, notes, created_at`

// Create persiste un nuevo artículo y asigna el ID generado. Quantity inicia en 0.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, category, unit, quantity, price, supplier, notes)
		VALUES ($1, $2, $3, 0, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Category, item.Unit, item.Price, item.Supplier, item.Notes,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	item.Quantity = decimal.Zero
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene el artículo bloqueando su fila (SELECT FOR UPDATE).
// Serializa los ajustes de existencia concurrentes sobre el mismo artículo:
// dos movimientos simultáneos nunca pierden una actualización.
func (r *ItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.get(ctx, id, true)
}

func (r *ItemRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var it entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Category, &it.Unit, &it.Quantity,
		&it.Price, &it.Supplier, &it.Notes, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// AdjustQuantity aplica un delta con signo sobre la existencia del artículo.
// Siempre se invoca dentro de la misma transacción que inserta o anula el
// movimiento correspondiente (TxRunner), con la fila ya bloqueada.
func (r *ItemRepo) AdjustQuantity(ctx context.Context, id int64, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET quantity = quantity + $2 WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los artículos ordenados por id ascendente (orden de alta).
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.Quantity,
			&it.Price, &it.Supplier, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
