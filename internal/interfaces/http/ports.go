package http

import (
	"context"

	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

// MaterialReceiver registra ingresos de material (implementado por inventory.ReceiveMaterialUseCase).
type MaterialReceiver interface {
	Receive(ctx context.Context, in inventory.ReceiveInput) (string, error)
}

// BatchRegistrar registra lotes de producción (implementado por inventory.RegisterBatchUseCase).
type BatchRegistrar interface {
	Register(ctx context.Context, in inventory.BatchInput) (string, error)
}

// LedgerQuerier atiende consultas de stock y kardex (implementado por inventory.QueryUseCase).
type LedgerQuerier interface {
	Stock(ctx context.Context, sku string) (*entity.Material, error)
	Kardex(ctx context.Context, filter repository.KardexFilter) ([]entity.KardexEntry, error)
	KardexPDF(ctx context.Context, filter repository.KardexFilter) ([]byte, error)
}

// Pinger verifica la conexión con la base de datos (pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ MaterialReceiver = (*inventory.ReceiveMaterialUseCase)(nil)
	_ BatchRegistrar   = (*inventory.RegisterBatchUseCase)(nil)
	_ LedgerQuerier    = (*inventory.QueryUseCase)(nil)
)
