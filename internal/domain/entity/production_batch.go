package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch registra una corrida de producción. Merma se guarda pero no afecta el stock.
type ProductionBatch struct {
	ID               string
	ProductID        string
	Lot              string
	QuantityProduced decimal.Decimal
	Merma            decimal.Decimal
	UserID           *string
	CreatedAt        time.Time
}
