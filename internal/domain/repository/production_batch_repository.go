package repository

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
)

// ProductionBatchRepository define el puerto de persistencia para lotes de producción.
type ProductionBatchRepository interface {
	Create(ctx context.Context, batch *entity.ProductionBatch) error
}
