package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/inventory"
)

// ReceiveInput entrada de un Ingreso (recepción de material comprado).
// Cantidad > 0 y costo >= 0 son lo esperado, pero no se validan.
type ReceiveInput struct {
	MaterialSKU string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Reference   *string
	UserID      *string
}

// ReceiveMaterialUseCase registra ingresos de material con bloqueo de fila y recálculo del costo promedio.
type ReceiveMaterialUseCase struct {
	txRunner TxRunner
}

// NewReceiveMaterialUseCase construye el caso de uso.
func NewReceiveMaterialUseCase(txRunner TxRunner) *ReceiveMaterialUseCase {
	return &ReceiveMaterialUseCase{txRunner: txRunner}
}

// Receive bloquea el material (SELECT FOR UPDATE), inserta el movimiento IN/compra,
// recalcula stock y costo promedio ponderado y hace Commit. Devuelve el ID del movimiento.
// No es idempotente: dos llamadas iguales generan dos movimientos. Un SKU vacío es
// simplemente un material que no existe.
func (uc *ReceiveMaterialUseCase) Receive(ctx context.Context, in ReceiveInput) (string, error) {
	var movID string
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		mat, err := repos.Materials.GetBySKUForUpdate(ctx, in.MaterialSKU)
		if err != nil {
			return err
		}

		mov := &entity.InventoryMovement{
			MaterialID: mat.ID,
			Type:       entity.MovementTypeIN,
			Quantity:   in.Quantity,
			UnitCost:   in.UnitCost,
			Origin:     entity.OriginPurchase,
			Reference:  in.Reference,
			UserID:     in.UserID,
		}
		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}

		newStock := mat.StockActual.Add(in.Quantity)
		newAvg := inventory.CostCalculator(mat.StockActual, mat.AvgCost, in.Quantity, in.UnitCost)
		if err := repos.Materials.UpdateStockAndCost(ctx, mat.ID, newStock, newAvg); err != nil {
			return err
		}
		movID = mov.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return movID, nil
}
