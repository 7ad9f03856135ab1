package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/pkg/jalali"
)

// CreateItemRequest body para POST /api/items. Solo Name es obligatorio;
// la existencia inicia siempre en 0 (solo cambia vía transacciones).
type CreateItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
	Notes    string          `json:"notes"`
}

// ItemResponse representación de un artículo en respuestas y reportes.
type ItemResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Supplier  string          `json:"supplier,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToItemResponse convierte la entidad a DTO.
func ToItemResponse(it *entity.Item) *ItemResponse {
	if it == nil {
		return nil
	}
	return &ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Unit:      it.Unit,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Supplier:  it.Supplier,
		Notes:     it.Notes,
		CreatedAt: it.CreatedAt,
	}
}

// RecordTransactionRequest body para POST /api/transactions.
// Date admite RFC3339; DateJalali admite YYYY/MM/DD (calendario persa).
// Si ambos vienen vacíos se usa la fecha actual. Quantity es la magnitud
// (positiva); el signo lo determina Type.
type RecordTransactionRequest struct {
	ItemID     int64           `json:"item_id"`
	Type       string          `json:"type"`
	Number     string          `json:"number"`
	Date       *time.Time      `json:"date,omitempty"`
	DateJalali string          `json:"date_jalali,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Notes      string          `json:"notes"`
}

// TransactionResponse representación de una transacción (con el artículo unido
// cuando proviene del listado de reporte).
type TransactionResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	ItemName   string          `json:"item_name,omitempty"`
	ItemUnit   string          `json:"item_unit,omitempty"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	Number     string          `json:"number"`
	Date       time.Time       `json:"date"`
	DateJalali string          `json:"date_jalali"`
	Quantity   decimal.Decimal `json:"quantity"`
	Delta      decimal.Decimal `json:"delta"` // cantidad con signo aplicado
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToTransactionResponse convierte la entidad a DTO.
func ToTransactionResponse(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:         t.ID,
		ItemID:     t.ItemID,
		Type:       t.Type,
		Status:     t.Status,
		Number:     t.Number,
		Date:       t.Date,
		DateJalali: jalali.Format(t.Date),
		Quantity:   t.Quantity,
		Delta:      entity.SignedQuantity(t.Type, t.Quantity),
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt,
	}
}

// ToTransactionWithItemResponse convierte la fila de reporte (join con items) a DTO.
func ToTransactionWithItemResponse(t *entity.TransactionWithItem) *TransactionResponse {
	if t == nil {
		return nil
	}
	resp := ToTransactionResponse(&t.Transaction)
	resp.ItemName = t.ItemName
	resp.ItemUnit = t.ItemUnit
	return resp
}

// ListTransactionsRequest query params para GET /api/transactions.
type ListTransactionsRequest struct {
	ItemID *int64     `query:"item_id"`
	From   *time.Time `query:"from"`
	To     *time.Time `query:"to"`
	PageRequest
}
