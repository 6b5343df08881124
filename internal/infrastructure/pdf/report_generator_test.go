package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
)

func TestRenderReport_GeneraPDF(t *testing.T) {
	report := &dto.ReportDTO{
		Label: "Febrero 2024",
		From:  "2024-02-01",
		To:    "2024-02-29",
		Production: dto.CodeTotalsDTO{FR: 10, CA: 5, Total: 15, TotalKG: decimal.RequireFromString("37.5")},
		Inventory: []dto.GroupedInventoryDTO{
			{Code: "FR", Name: "Papa a la francesa (2.5 kg)", StockPackages: 6, StockKG: decimal.NewFromInt(15)},
		},
		TopClients:      []dto.ClientRankingDTO{{ClientID: "c1", Name: "Tienda", Packages: 4}},
		StockHistory:    []dto.StockPointDTO{{Date: "2024-02-01", Stock: 6}},
		ProductionByDay: []dto.DailyPackagesDTO{{Date: "2024-02-01", Packages: 10}},
	}
	out, err := pdf.NewReportGenerator("produccion-api").RenderReport(report)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
