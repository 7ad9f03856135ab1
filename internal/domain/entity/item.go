package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario (SKU) con su existencia actual.
// Quantity nunca se escribe directamente: solo cambia como efecto de registrar
// o anular transacciones, y siempre es igual a la suma con signo de las
// transacciones aprobadas del artículo.
type Item struct {
	ID        int64
	Name      string
	Category  string // materia prima, producto, consumible, activo (texto libre)
	Unit      string // "kg", "pcs", ...
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Supplier  string
	Notes     string
	CreatedAt time.Time
}
