package inventory

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Materials repository.MaterialRepository
	Products  repository.ProductRepository
	BOM       repository.BOMRepository
	Movements repository.InventoryMovementRepository
	Batches   repository.ProductionBatchRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo; si no, Commit. Los bloqueos FOR UPDATE
// tomados dentro de fn se liberan al terminar la transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// KardexPDFGenerator genera la representación en PDF del kardex de un material.
// material puede ser nil cuando el SKU no existe (el reporte sale vacío).
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, sku string, material *entity.Material, entries []entity.KardexEntry) ([]byte, error)
}
