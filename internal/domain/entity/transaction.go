package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario. Cada tipo tiene signo fijo sobre la
// existencia: las entradas suman, las salidas restan.
const (
	TxTypePurchaseIn     = "purchase_in"     // compra (entrada)
	TxTypePurchaseReturn = "purchase_return" // devolución a proveedor (salida)
	TxTypeProductionIn   = "production_in"   // producción terminada (entrada)
	TxTypeConsumption    = "consumption"     // consumo en producción (salida)
	TxTypeSaleOut        = "sale_out"        // venta (salida)
	TxTypeSaleReturn     = "sale_return"     // devolución de cliente (entrada)
	TxTypeTransfer       = "transfer"        // traslado fuera del almacén (salida)
	TxTypeDisposal       = "disposal"        // baja/desecho (salida)
)

// Estados de una transacción. Solo las aprobadas cuentan para la existencia.
const (
	TxStatusApproved  = "approved"
	TxStatusVoided    = "voided"
	TxStatusCancelled = "cancelled"
	TxStatusPending   = "pending"
)

// typeSigns signo del delta de existencia por tipo.
var typeSigns = map[string]int{
	TxTypePurchaseIn:     +1,
	TxTypeProductionIn:   +1,
	TxTypeSaleReturn:     +1,
	TxTypePurchaseReturn: -1,
	TxTypeConsumption:    -1,
	TxTypeSaleOut:        -1,
	TxTypeTransfer:       -1,
	TxTypeDisposal:       -1,
}

// TypeSign devuelve el signo (+1 entrada, -1 salida) del tipo, y false si el
// tipo no es conocido.
func TypeSign(txType string) (int, bool) {
	sign, ok := typeSigns[txType]
	return sign, ok
}

// SignedQuantity devuelve la cantidad con el signo del tipo aplicado.
// Para tipos desconocidos devuelve cero (el caso de uso valida antes).
func SignedQuantity(txType string, quantity decimal.Decimal) decimal.Decimal {
	sign, ok := typeSigns[txType]
	if !ok {
		return decimal.Zero
	}
	if sign < 0 {
		return quantity.Neg()
	}
	return quantity
}

// Transaction representa un movimiento inmutable de existencia contra un
// artículo. Quantity es la magnitud (siempre positiva); el signo lo aporta
// el tipo. Date es la fecha del movimiento (puede ser retroactiva), distinta
// de CreatedAt.
type Transaction struct {
	ID        int64
	ItemID    int64
	Type      string
	Status    string
	Number    string // referencia/documento externo, no único
	Date      time.Time
	Quantity  decimal.Decimal
	Notes     string
	CreatedAt time.Time
}

// TransactionWithItem fila de reporte: transacción unida con el nombre del artículo.
type TransactionWithItem struct {
	Transaction
	ItemName string
	ItemUnit string
}
