package export_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/export"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository/repotest"
)

const (
	frID    = "11111111-1111-1111-1111-111111111111"
	pureID  = "33333333-3333-3333-3333-333333333333"
	clientA = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
)

func strPtr(s string) *string { return &s }

func memory() *repotest.Memory {
	m := repotest.New()
	m.Products = []entity.Product{
		{ID: frID, Code: strPtr("FR"), Name: "Francesa"},
		{ID: pureID, Code: strPtr("PU"), Name: "Puré"},
	}
	m.Clients = []entity.Client{{ID: clientA, Name: "Almacén \"Uno\""}}
	m.Production = []entity.ProductionEntry{
		{ID: 2, Date: "2024-03-15", ProductID: pureID, Packages: 2},
		{ID: 1, Date: "2019-03-14", ProductID: frID, Packages: 5, Notes: strPtr("a, b")},
	}
	m.Shipments = []entity.ShipmentEntry{
		{ID: 3, Date: "2024-03-15", ProductID: frID, ClientID: clientA, Packages: 4},
		{ID: 4, Date: "2024-03-16", ProductID: frID, ClientID: "desconocido", Packages: 1, Notes: strPtr("línea\nnueva")},
	}
	return m
}

func repos(m *repotest.Memory) dashboard.Repositories {
	return dashboard.Repositories{
		Products:   m,
		Clients:    m.ClientsRepo(),
		Production: m.ProductionRepo(),
		Shipments:  m.ShipmentsRepo(),
		Inventory:  m.InventoryRepo(),
	}
}

func TestProductionCSV_TodasLasFilasEnOrden(t *testing.T) {
	uc := export.NewUseCase(repos(memory()), nil, nil)

	out, err := uc.ProductionCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fecha,producto,paquetes,peso_kg,notas\n"+
		"2019-03-14,Papa a la francesa (2.5 kg),5,12.5,\"a, b\"\n"+
		"2024-03-15,Puré,2,5,", out)
}

func TestShipmentsCSV_EscapaCeldas(t *testing.T) {
	uc := export.NewUseCase(repos(memory()), nil, nil)

	out, err := uc.ShipmentsCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fecha,cliente,producto,paquetes,peso_kg,notas\n"+
		"2024-03-15,\"Almacén \"\"Uno\"\"\",Papa a la francesa (2.5 kg),4,10,\n"+
		"2024-03-16,Cliente,Papa a la francesa (2.5 kg),1,2.5,\"línea\nnueva\"", out)
}

func TestProductionCSV_SinFilasEsVacio(t *testing.T) {
	m := memory()
	m.Production = nil
	out, err := export.NewUseCase(repos(m), nil, nil).ProductionCSV(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProductionCSV_ErrorDeLectura(t *testing.T) {
	m := memory()
	m.Err = errors.New("sin conexión")
	_, err := export.NewUseCase(repos(m), nil, nil).ProductionCSV(context.Background())
	assert.ErrorContains(t, err, "sin conexión")
}

type stubReports struct {
	got dashboard.ReportFilter
}

func (s *stubReports) GetReport(ctx context.Context, f dashboard.ReportFilter) (*dto.ReportDTO, error) {
	s.got = f
	return &dto.ReportDTO{Label: "Total"}, nil
}

type stubRenderer struct{}

func (stubRenderer) RenderReport(r *dto.ReportDTO) ([]byte, error) {
	return []byte("%PDF-" + r.Label), nil
}

func TestReportPDF_DelegaEnElRenderizador(t *testing.T) {
	reports := &stubReports{}
	uc := export.NewUseCase(repos(memory()), reports, stubRenderer{})

	month, year := 2, 2024
	out, err := uc.ReportPDF(context.Background(), dashboard.ReportFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-Total", string(out))
	require.NotNil(t, reports.got.Month)
	assert.Equal(t, 2, *reports.got.Month)
}
