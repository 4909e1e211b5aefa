package inventory

import (
	"context"
	"errors"

	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

// QueryUseCase atiende las consultas de solo lectura (stock y kardex). No toma bloqueos.
type QueryUseCase struct {
	materialRepo repository.MaterialRepository
	movementRepo repository.InventoryMovementRepository
	pdf          KardexPDFGenerator
}

// NewQueryUseCase construye el caso de uso de consultas. pdf puede ser nil si no se exporta a PDF.
func NewQueryUseCase(
	materialRepo repository.MaterialRepository,
	movementRepo repository.InventoryMovementRepository,
	pdf KardexPDFGenerator,
) *QueryUseCase {
	return &QueryUseCase{materialRepo: materialRepo, movementRepo: movementRepo, pdf: pdf}
}

// Stock devuelve el material con su stock y costo promedio. domain.ErrMaterialNotFound si no existe.
func (uc *QueryUseCase) Stock(ctx context.Context, sku string) (*entity.Material, error) {
	return uc.materialRepo.GetBySKU(ctx, sku)
}

// Kardex devuelve los movimientos del material en orden cronológico ascendente.
// Un SKU desconocido produce una lista vacía, no un error (a diferencia de Stock).
func (uc *QueryUseCase) Kardex(ctx context.Context, filter repository.KardexFilter) ([]entity.KardexEntry, error) {
	entries, err := uc.movementRepo.ListKardex(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entity.KardexEntry{}
	}
	return entries, nil
}

// KardexPDF genera el kardex en PDF con saldo corrido. Igual que Kardex, un SKU
// desconocido produce un reporte vacío.
func (uc *QueryUseCase) KardexPDF(ctx context.Context, filter repository.KardexFilter) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("generador PDF no configurado")
	}
	entries, err := uc.Kardex(ctx, filter)
	if err != nil {
		return nil, err
	}
	mat, err := uc.materialRepo.GetBySKU(ctx, filter.MaterialSKU)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	return uc.pdf.GenerateKardexPDF(ctx, filter.MaterialSKU, mat, entries)
}
