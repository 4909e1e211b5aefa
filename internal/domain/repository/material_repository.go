package repository

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MaterialRepository define el puerto de persistencia para materiales.
// Los métodos ForUpdate bloquean la fila (SELECT FOR UPDATE) hasta el fin de la transacción.
type MaterialRepository interface {
	GetBySKU(ctx context.Context, sku string) (*entity.Material, error)
	GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Material, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Material, error)
	UpdateStockAndCost(ctx context.Context, id string, stock, avgCost decimal.Decimal) error
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
}
