package ledger_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: emulan el comportamiento transaccional del store real.
// El runner toma un lock global por transacción (equivalente en los tests al
// FOR UPDATE por fila) y restaura un snapshot del estado si fn falla, igual
// que el Rollback de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

var errFalloSimulado = errors.New("fallo simulado de storage")

type fakeStore struct {
	mu       sync.Mutex
	items    map[int64]entity.Item
	txs      map[int64]entity.Transaction
	nextItem int64
	nextTx   int64

	// failAdjust simula un fallo de storage entre el insert de la transacción
	// y el ajuste de existencia.
	failAdjust bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items: make(map[int64]entity.Item),
		txs:   make(map[int64]entity.Transaction),
	}
}

func (s *fakeStore) snapshot() (map[int64]entity.Item, map[int64]entity.Transaction, int64, int64) {
	items := make(map[int64]entity.Item, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	txs := make(map[int64]entity.Transaction, len(s.txs))
	for k, v := range s.txs {
		txs[k] = v
	}
	return items, txs, s.nextItem, s.nextTx
}

// fakeItemRepo no toma locks propios: dentro de Run el lock lo tiene el runner.
type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.nextItem++
	item.ID = r.s.nextItem
	item.Quantity = decimal.Zero
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := it
	return &cp, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) AdjustQuantity(_ context.Context, id int64, delta decimal.Decimal) error {
	if r.s.failAdjust {
		return errFalloSimulado
	}
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = it.Quantity.Add(delta)
	r.s.items[id] = it
	return nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	ids := make([]int64, 0, len(r.s.items))
	for id := range r.s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Item, 0, len(ids))
	for _, id := range ids {
		it := r.s.items[id]
		list = append(list, &it)
	}
	return list, nil
}

type fakeTxRepo struct{ s *fakeStore }

func (r *fakeTxRepo) Create(_ context.Context, t *entity.Transaction) error {
	if _, ok := r.s.items[t.ItemID]; !ok {
		return domain.ErrNotFound // clave foránea
	}
	r.s.nextTx++
	t.ID = r.s.nextTx
	r.s.txs[t.ID] = *t
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	t, ok := r.s.txs[id]
	if !ok {
		return nil, nil
	}
	cp := t
	return &cp, nil
}

func (r *fakeTxRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTxRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	t, ok := r.s.txs[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Status = status
	r.s.txs[id] = t
	return nil
}

func (r *fakeTxRepo) ListWithItem(_ context.Context, filter repository.TransactionFilter) ([]*entity.TransactionWithItem, error) {
	var list []*entity.TransactionWithItem
	for _, t := range r.s.txs {
		if filter.ItemID != nil && t.ItemID != *filter.ItemID {
			continue
		}
		if filter.From != nil && t.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && t.Date.After(*filter.To) {
			continue
		}
		it := r.s.items[t.ItemID]
		list = append(list, &entity.TransactionWithItem{
			Transaction: t,
			ItemName:    it.Name,
			ItemUnit:    it.Unit,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	if filter.Limit > 0 {
		start := filter.Offset
		if start > len(list) {
			start = len(list)
		}
		end := start + filter.Limit
		if end > len(list) {
			end = len(list)
		}
		list = list[start:end]
	}
	return list, nil
}

// fakeTxRunner serializa las transacciones y revierte el estado si fn falla.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items, txs, nextItem, nextTx := r.s.snapshot()
	err := fn(&fakeItemRepo{s: r.s}, &fakeTxRepo{s: r.s})
	if err != nil {
		// Rollback: nada del callback queda aplicado.
		r.s.items, r.s.txs, r.s.nextItem, r.s.nextTx = items, txs, nextItem, nextTx
		return err
	}
	return nil
}

// lockedItemRepo repo atado al "pool": toma el lock por operación.
type lockedItemRepo struct{ s *fakeStore }

func (r *lockedItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeItemRepo{s: r.s}).Create(ctx, item)
}

func (r *lockedItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeItemRepo{s: r.s}).GetByID(ctx, id)
}

func (r *lockedItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *lockedItemRepo) AdjustQuantity(ctx context.Context, id int64, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeItemRepo{s: r.s}).AdjustQuantity(ctx, id, delta)
}

func (r *lockedItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeItemRepo{s: r.s}).List(ctx)
}

// lockedTxRepo idem para transacciones (lecturas de reporte).
type lockedTxRepo struct{ s *fakeStore }

func (r *lockedTxRepo) Create(ctx context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeTxRepo{s: r.s}).Create(ctx, t)
}

func (r *lockedTxRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeTxRepo{s: r.s}).GetByID(ctx, id)
}

func (r *lockedTxRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r *lockedTxRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeTxRepo{s: r.s}).UpdateStatus(ctx, id, status)
}

func (r *lockedTxRepo) ListWithItem(ctx context.Context, filter repository.TransactionFilter) ([]*entity.TransactionWithItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&fakeTxRepo{s: r.s}).ListWithItem(ctx, filter)
}

var (
	_ repository.ItemRepository        = (*lockedItemRepo)(nil)
	_ repository.TransactionRepository = (*lockedTxRepo)(nil)
)
