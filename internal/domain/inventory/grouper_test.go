package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

func summary(code string, produced, shipped, stock int, w string) entity.InventorySummaryRow {
	row := entity.InventorySummaryRow{
		Code:                  strPtr(code),
		TotalProducedPackages: produced,
		TotalShippedPackages:  shipped,
		StockPackages:         stock,
	}
	if w != "" {
		row.WeightKG = decimal.NewNullDecimal(decimal.RequireFromString(w))
	}
	return row
}

func TestGroupByCode_FusionaYOrdena(t *testing.T) {
	rows := []entity.InventorySummaryRow{
		summary("ca", 10, 4, 6, "2.5"),
		summary("FR", 100, 30, 70, "2.5"),
		summary("XX", 1, 1, 0, ""),
		summary(" fr", 5, 1, 4, "3"),
	}
	got := inventory.GroupByCode(rows)
	require.Len(t, got, 2)

	assert.Equal(t, catalog.CodeFR, got[0].Code)
	assert.Equal(t, 105, got[0].TotalProducedPackages)
	assert.Equal(t, 31, got[0].TotalShippedPackages)
	assert.Equal(t, 74, got[0].StockPackages)
	assert.True(t, got[0].WeightKG.Equal(decimal.NewFromInt(3)), "peso de la última fila fusionada")
	assert.Equal(t, "Papa a la francesa (3 kg)", got[0].Name)

	assert.Equal(t, catalog.CodeCA, got[1].Code)
	assert.Equal(t, 6, got[1].StockPackages)

	assert.Equal(t, 80, inventory.TotalStock(got))
	assert.Equal(t, 6, inventory.StockFor(got, catalog.CodeCA))
}

func TestGroupByCode_OmiteCodigosSinFilas(t *testing.T) {
	got := inventory.GroupByCode([]entity.InventorySummaryRow{summary("CA", 1, 0, 1, "")})
	require.Len(t, got, 1)
	assert.Equal(t, catalog.CodeCA, got[0].Code)
	assert.True(t, got[0].WeightKG.Equal(catalog.StandardPackageKG))
	assert.Zero(t, inventory.StockFor(got, catalog.CodeFR))

	assert.Empty(t, inventory.GroupByCode(nil))
}
