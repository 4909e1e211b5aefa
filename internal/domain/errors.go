package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrMaterialNotFound = errors.New("Material no encontrado")
	ErrProductNotFound  = errors.New("Producto no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
)

// ErrBOMInconsistent indica una línea de BOM que apunta a un material inexistente.
// No cuenta como NotFound: el lote responde 500.
var ErrBOMInconsistent = errors.New("BOM inconsistente: material de la receta no existe")

// ErrRetryable marca conflictos del store (deadlock, serialización): reenviar es seguro.
var ErrRetryable = errors.New("conflicto transitorio en la base de datos, reintente")

// IsNotFound indica si err corresponde a un recurso inexistente (material, producto o genérico).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMaterialNotFound) ||
		errors.Is(err, ErrProductNotFound)
}
