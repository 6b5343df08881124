package entity

import "github.com/shopspring/decimal"

// Product representa una entrada del catálogo de productos.
// Code es texto libre (puede venir nulo, en minúsculas o con espacios); solo "FR" y "CA"
// normalizados son estándar. Puede haber varias filas con el mismo código (registros legados).
type Product struct {
	ID       string
	Code     *string
	Name     string
	WeightKG decimal.NullDecimal // peso por paquete en kg (opcional)
}
