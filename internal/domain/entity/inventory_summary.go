package entity

import "github.com/shopspring/decimal"

// InventorySummaryRow fila de la vista inventory_summary (solo lectura).
// Es la única fuente del stock absoluto actual; el recorte a cero lo hace la vista.
type InventorySummaryRow struct {
	ProductID             string
	Code                  *string
	Name                  string
	TotalProducedPackages int
	TotalShippedPackages  int
	StockPackages         int
	WeightKG              decimal.NullDecimal
}
