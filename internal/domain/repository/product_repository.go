package repository

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos terminados.
type ProductRepository interface {
	// GetActiveBySKU devuelve domain.ErrProductNotFound si no existe o está inactivo.
	GetActiveBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
