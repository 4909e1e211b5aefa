package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const selectMaterial = `
	SELECT id, sku, coalesce(name, ''), coalesce(unidad, ''),
	       coalesce(stock_actual, 0), coalesce(avg_cost, 0), created_at
	FROM materials`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// GetBySKU lectura sin bloqueo.
func (r *MaterialRepo) GetBySKU(ctx context.Context, sku string) (*entity.Material, error) {
	return r.get(ctx, selectMaterial+` WHERE sku = $1`, sku)
}

// GetBySKUForUpdate bloquea la fila del material hasta el fin de la transacción.
func (r *MaterialRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Material, error) {
	return r.get(ctx, selectMaterial+` WHERE sku = $1 FOR UPDATE`, sku)
}

// GetByIDForUpdate bloquea la fila del material hasta el fin de la transacción.
func (r *MaterialRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Material, error) {
	return r.get(ctx, selectMaterial+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *MaterialRepo) get(ctx context.Context, query string, arg string) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&m.ID, &m.SKU, &m.Name, &m.Unit, &m.StockActual, &m.AvgCost, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// UpdateStockAndCost persiste stock y costo promedio (Ingreso).
func (r *MaterialRepo) UpdateStockAndCost(ctx context.Context, id string, stock, avgCost decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE materials SET stock_actual = $2, avg_cost = $3 WHERE id = $1`, id, stock, avgCost)
	if err != nil {
		return fmt.Errorf("update material stock/cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}

// UpdateStock persiste solo el stock; las salidas no tocan el costo promedio.
func (r *MaterialRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE materials SET stock_actual = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update material stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}
