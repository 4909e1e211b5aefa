package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/inventory"
)

// BatchInput entrada de un Lote de producción.
type BatchInput struct {
	ProductSKU       string
	QuantityProduced decimal.Decimal
	Merma            decimal.Decimal // se registra, no afecta el stock
	Lot              string
	UserID           *string
}

// RegisterBatchUseCase registra lotes de producción y consume materiales según el BOM.
type RegisterBatchUseCase struct {
	txRunner TxRunner
}

// NewRegisterBatchUseCase construye el caso de uso.
func NewRegisterBatchUseCase(txRunner TxRunner) *RegisterBatchUseCase {
	return &RegisterBatchUseCase{txRunner: txRunner}
}

// Register inserta el lote y, por cada línea del BOM, bloquea el material, registra una salida
// OUT/produccion al costo promedio vigente (antes de descontar) y descuenta el consumo del stock.
// Todo ocurre en una sola transacción: si falla cualquier línea no queda ni el lote ni
// ningún movimiento. Devuelve el ID del lote.
func (uc *RegisterBatchUseCase) Register(ctx context.Context, in BatchInput) (string, error) {
	if strings.TrimSpace(in.Lot) == "" {
		return "", domain.ErrInvalidInput
	}

	var batchID string
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := repos.Products.GetActiveBySKU(ctx, in.ProductSKU)
		if err != nil {
			return err
		}

		batch := &entity.ProductionBatch{
			ProductID:        product.ID,
			Lot:              in.Lot,
			QuantityProduced: in.QuantityProduced,
			Merma:            in.Merma,
			UserID:           in.UserID,
		}
		if err := repos.Batches.Create(ctx, batch); err != nil {
			return err
		}

		lines, err := repos.BOM.ListByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		lot := in.Lot
		for _, line := range lines {
			if err := consumeLine(ctx, repos, line, in.QuantityProduced, &lot, in.UserID); err != nil {
				return err
			}
		}
		batchID = batch.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return batchID, nil
}

// consumeLine procesa una línea del BOM dentro de la transacción del lote.
func consumeLine(ctx context.Context, repos TxRepos, line entity.BOMEntry, produced decimal.Decimal, lot *string, userID *string) error {
	mat, err := repos.Materials.GetByIDForUpdate(ctx, line.MaterialID)
	if errors.Is(err, domain.ErrMaterialNotFound) {
		return fmt.Errorf("%w: material %s", domain.ErrBOMInconsistent, line.MaterialID)
	}
	if err != nil {
		return err
	}
	consumo := inventory.Consumption(line.QtyPerUnit, produced)

	mov := &entity.InventoryMovement{
		MaterialID: mat.ID,
		Type:       entity.MovementTypeOUT,
		Quantity:   consumo,
		UnitCost:   mat.AvgCost,
		Origin:     entity.OriginProduction,
		Reference:  lot,
		UserID:     userID,
	}
	if err := repos.Movements.Create(ctx, mov); err != nil {
		return err
	}
	return repos.Materials.UpdateStock(ctx, mat.ID, mat.StockActual.Sub(consumo))
}
