package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo lectura de la lista de materiales.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// ListByProduct lista las líneas del BOM ordenadas por material_id. Ese orden es el orden
// en que Lote bloquea los materiales, igual para todos los lotes.
func (r *BOMRepo) ListByProduct(ctx context.Context, productID string) ([]entity.BOMEntry, error) {
	query := `
		SELECT producto_id, material_id, qty_por_unidad
		FROM bom WHERE producto_id = $1
		ORDER BY material_id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	defer rows.Close()
	var list []entity.BOMEntry
	for rows.Next() {
		var e entity.BOMEntry
		if err := rows.Scan(&e.ProductID, &e.MaterialID, &e.QtyPerUnit); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
