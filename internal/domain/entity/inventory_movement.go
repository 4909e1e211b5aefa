package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Orígenes de movimiento.
const (
	OriginPurchase   = "compra"
	OriginProduction = "produccion"
)

// InventoryMovement es una fila append-only del ledger. Nunca se actualiza ni se borra.
type InventoryMovement struct {
	ID         string
	MaterialID string
	Type       string
	Quantity   decimal.Decimal // siempre positiva; el signo lo da Type
	UnitCost   decimal.Decimal
	Origin     string
	Reference  *string // NULL si no se envía
	UserID     *string // NULL si no se envía
	CreatedAt  time.Time
}

// KardexEntry es la proyección de un movimiento que devuelve el reporte kardex.
type KardexEntry struct {
	CreatedAt time.Time
	Type      string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Origin    string
	Reference *string
}
