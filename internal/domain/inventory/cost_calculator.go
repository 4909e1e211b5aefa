package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa el costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el nuevo stock es <= 0 el costo queda en 0.
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// Consumption devuelve el consumo de un material para una corrida: qty_por_unidad * cantidad_producida.
// La merma no interviene.
func Consumption(qtyPorUnidad, cantidadProducida decimal.Decimal) decimal.Decimal {
	return qtyPorUnidad.Mul(cantidadProducida)
}
