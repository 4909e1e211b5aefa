package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima o insumo. StockActual y AvgCost son un caché
// desnormalizado del efecto acumulado de inventory_movements; solo los modifican Ingreso y Lote.
type Material struct {
	ID          string
	SKU         string // único
	Name        string
	Unit        string          // unidad de medida (kg, lt, und...)
	StockActual decimal.Decimal // puede ser negativo: no se impide sobreconsumo
	AvgCost     decimal.Decimal // costo promedio ponderado, 0 si stock <= 0
	CreatedAt   time.Time
}
