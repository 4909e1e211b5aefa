package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de productos sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetActiveBySKU obtiene un producto activo por SKU.
func (r *ProductRepo) GetActiveBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, coalesce(name, ''), is_active
		FROM products WHERE sku = $1 AND is_active = true`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, sku).Scan(&p.ID, &p.SKU, &p.Name, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}
