package repository

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
)

// BOMRepository lee la lista de materiales (datos de referencia estáticos, sin bloqueo).
type BOMRepository interface {
	// ListByProduct devuelve las líneas ordenadas por material_id (orden canónico de bloqueo).
	ListByProduct(ctx context.Context, productID string) ([]entity.BOMEntry, error)
}
