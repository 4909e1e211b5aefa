package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create inserta un movimiento. referencia/user_id nil se guardan como NULL.
func (r *InventoryMovementRepo) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, material_id, tipo, cantidad, costo_unit, origen, referencia, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		movement.ID, movement.MaterialID, movement.Type, movement.Quantity, movement.UnitCost,
		movement.Origin, movement.Reference, movement.UserID,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListKardex lista los movimientos de un material por SKU en orden ascendente de created_at.
// Las cotas desde/hasta son inclusivas y se pasan como texto para que las interprete PostgreSQL.
func (r *InventoryMovementRepo) ListKardex(ctx context.Context, filter repository.KardexFilter) ([]entity.KardexEntry, error) {
	query := `
		SELECT im.created_at, im.tipo, im.cantidad, im.costo_unit, im.origen, im.referencia
		FROM inventory_movements im
		JOIN materials m ON m.id = im.material_id
		WHERE m.sku = $1`
	args := []any{filter.MaterialSKU}
	pos := 2
	if filter.Desde != nil {
		query += fmt.Sprintf(" AND im.created_at >= $%d::text::timestamptz", pos)
		args = append(args, *filter.Desde)
		pos++
	}
	if filter.Hasta != nil {
		query += fmt.Sprintf(" AND im.created_at <= $%d::text::timestamptz", pos)
		args = append(args, *filter.Hasta)
	}
	query += " ORDER BY im.created_at ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()
	list := []entity.KardexEntry{}
	for rows.Next() {
		var e entity.KardexEntry
		if err := rows.Scan(&e.CreatedAt, &e.Type, &e.Quantity, &e.UnitCost, &e.Origin, &e.Reference); err != nil {
			return nil, fmt.Errorf("scan kardex: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
