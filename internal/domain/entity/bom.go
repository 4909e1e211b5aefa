package entity

import "github.com/shopspring/decimal"

// BOMEntry es una línea de la lista de materiales: cantidad de material por unidad de producto.
type BOMEntry struct {
	ProductID  string
	MaterialID string
	QtyPerUnit decimal.Decimal
}
