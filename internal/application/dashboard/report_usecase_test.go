package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

func intPtr(i int) *int { return &i }

func newReport() *dashboard.ReportUseCase {
	return dashboard.NewReportUseCase(loadedStore(seed()), dashboard.FixedClock(testNow), settings(), logger.Nop())
}

func TestGetReport_MesPersonalizado(t *testing.T) {
	out, err := newReport().GetReport(context.Background(), dashboard.ReportFilter{Month: intPtr(2), Year: intPtr(2024)})
	require.NoError(t, err)

	assert.Equal(t, "Febrero 2024", out.Label)
	assert.Equal(t, "2024-02-01", out.From)
	assert.Equal(t, "2024-02-29", out.To)
	assert.Equal(t, 20, out.Production.FR)
	assert.Equal(t, 1, out.Shipments.FR)
	require.NotNil(t, out.Month)
	assert.Equal(t, 2, *out.Month)

	// Histórico anclado en 0: el envío del día 5 no puede dejar saldo negativo.
	require.Len(t, out.StockHistory, 29)
	assert.Equal(t, 0, out.StockHistory[4].Stock)
	assert.Equal(t, 20, out.StockHistory[9].Stock)
	assert.Equal(t, 20, out.StockHistory[28].Stock)

	require.Len(t, out.TopClients, 1)
	assert.Equal(t, "Almacén Uno", out.TopClients[0].Name)
	assert.Equal(t, []int{2024}, out.AvailableYears)
	assert.Len(t, out.Inventory, 2)
}

func TestGetReport_TotalSinFiltro(t *testing.T) {
	out, err := newReport().GetReport(context.Background(), dashboard.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, "Total", out.Label)
	assert.Nil(t, out.Month)
	assert.Nil(t, out.Year)
	assert.Equal(t, 35, out.Production.FR)
	assert.Equal(t, 3, out.Production.CA)
	assert.Equal(t, 38, out.Production.Total)
	assert.Equal(t, 7, out.Shipments.Total)
	assert.Equal(t, "2024-02-15", out.From)
	assert.Equal(t, "2024-03-15", out.To)
	require.Len(t, out.StockHistory, 30)
	assert.Equal(t, 31, out.StockHistory[29].Stock)

	require.Len(t, out.TopClients, 2)
	assert.Equal(t, 11, out.TopClients[0].Packages)
	assert.Equal(t, 5, out.TopClients[1].Packages)
}

func TestGetReport_SoloMesEsTotal(t *testing.T) {
	out, err := newReport().GetReport(context.Background(), dashboard.ReportFilter{Month: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, "Total", out.Label)
	assert.Nil(t, out.Month)
}

func TestGetReport_MesInvalido(t *testing.T) {
	_, err := newReport().GetReport(context.Background(), dashboard.ReportFilter{Month: intPtr(13), Year: intPtr(2024)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAvailableYears(t *testing.T) {
	snap := dashboard.NewSnapshot(nil, nil,
		[]entity.ProductionEntry{{Date: "2021-06-01"}, {Date: "no-es-fecha"}},
		[]entity.ShipmentEntry{{Date: "2022-01-10"}},
		nil, testNow)
	assert.Equal(t, []int{2021, 2022, 2023, 2024}, dashboard.AvailableYears(snap, 2024))

	future := dashboard.NewSnapshot(nil, nil, []entity.ProductionEntry{{Date: "2026-01-01"}}, nil, nil, testNow)
	assert.Equal(t, []int{2024, 2025, 2026}, dashboard.AvailableYears(future, 2024))

	assert.Equal(t, []int{2024}, dashboard.AvailableYears(dashboard.EmptySnapshot(), 2024))
}
