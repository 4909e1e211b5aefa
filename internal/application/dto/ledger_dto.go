package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngresoRequest body para POST /inventory/ingreso.
// referencia y user_id ausentes quedan en nil (NULL en BD), no en cadena vacía.
// cantidad y costo_unit son obligatorios: un decimal ausente queda en su valor cero
// (sin big.Int), distinto de un 0 explícito, y required lo rechaza.
type IngresoRequest struct {
	MaterialSKU string          `json:"material_sku" validate:"required"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"required"`
	CostoUnit   decimal.Decimal `json:"costo_unit" validate:"required"`
	Referencia  *string         `json:"referencia,omitempty"`
	UserID      *string         `json:"user_id,omitempty"`
}

// IngresoResponse respuesta de un ingreso registrado.
type IngresoResponse struct {
	OK    bool   `json:"ok"`
	MovID string `json:"mov_id"`
}

// LoteRequest body para POST /production/lote. merma por defecto 0.
type LoteRequest struct {
	ProductoSKU       string          `json:"producto_sku" validate:"required"`
	CantidadProducida decimal.Decimal `json:"cantidad_producida" validate:"required"`
	Merma             decimal.Decimal `json:"merma"`
	Lote              string          `json:"lote" validate:"required"`
	UserID            *string         `json:"user_id,omitempty"`
}

// LoteResponse respuesta de un lote registrado.
type LoteResponse struct {
	OK     bool   `json:"ok"`
	LoteID string `json:"lote_id"`
}

// StockResponse respuesta de GET /inventory/stock.
type StockResponse struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Unidad      string          `json:"unidad"`
	StockActual decimal.Decimal `json:"stock_actual"`
	AvgCost     decimal.Decimal `json:"avg_cost"`
}

// KardexMovimiento una fila del kardex.
type KardexMovimiento struct {
	CreatedAt  time.Time       `json:"created_at"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	CostoUnit  decimal.Decimal `json:"costo_unit"`
	Origen     string          `json:"origen"`
	Referencia *string         `json:"referencia"`
}

// KardexResponse respuesta de GET /reports/kardex.
type KardexResponse struct {
	Material    string             `json:"material"`
	Movimientos []KardexMovimiento `json:"movimientos"`
}
