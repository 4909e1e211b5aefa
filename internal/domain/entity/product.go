package entity

// Product representa un producto terminado. Solo lectura para el ledger.
type Product struct {
	ID       string
	SKU      string
	Name     string
	IsActive bool
}
