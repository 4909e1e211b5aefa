package repository

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
)

// KardexFilter filtra el reporte kardex. Desde/Hasta son cotas inclusivas que se pasan tal cual al store.
type KardexFilter struct {
	MaterialSKU string
	Desde       *string
	Hasta       *string
}

// InventoryMovementRepository define el puerto de persistencia para movimientos (append-only).
type InventoryMovementRepository interface {
	// Create inserta el movimiento y completa ID y CreatedAt con lo devuelto por el store.
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	ListKardex(ctx context.Context, filter KardexFilter) ([]entity.KardexEntry, error)
}
