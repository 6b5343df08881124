package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// GroupedInventory totales de la vista de inventario por código canónico.
type GroupedInventory struct {
	Code                  catalog.Code
	Name                  string
	TotalProducedPackages int
	TotalShippedPackages  int
	StockPackages         int
	WeightKG              decimal.Decimal
}

// GroupByCode fusiona las filas de inventory_summary por código. El peso es el de la
// última fila fusionada. Salida en orden FR, CA; un código sin filas no aparece.
func GroupByCode(rows []entity.InventorySummaryRow) []GroupedInventory {
	grouped := make(map[catalog.Code]*GroupedInventory, len(catalog.StandardCodes))
	for _, row := range rows {
		code, ok := catalog.ParseCode(row.Code)
		if !ok {
			continue
		}
		g, exists := grouped[code]
		if !exists {
			g = &GroupedInventory{Code: code}
			grouped[code] = g
		}
		g.TotalProducedPackages += row.TotalProducedPackages
		g.TotalShippedPackages += row.TotalShippedPackages
		g.StockPackages += row.StockPackages
		g.WeightKG = catalog.WeightOrStandard(row.WeightKG)
	}

	out := make([]GroupedInventory, 0, len(grouped))
	for _, code := range catalog.StandardCodes {
		g, ok := grouped[code]
		if !ok {
			continue
		}
		g.Name = catalog.Label(code, g.WeightKG, false)
		out = append(out, *g)
	}
	return out
}

// TotalStock suma el stock de todos los códigos agrupados.
func TotalStock(groups []GroupedInventory) int {
	total := 0
	for _, g := range groups {
		total += g.StockPackages
	}
	return total
}

// StockFor stock agrupado de un código (0 si no hay filas).
func StockFor(groups []GroupedInventory, code catalog.Code) int {
	for _, g := range groups {
		if g.Code == code {
			return g.StockPackages
		}
	}
	return 0
}
