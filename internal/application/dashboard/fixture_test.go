package dashboard_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository/repotest"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

const (
	frID     = "11111111-1111-1111-1111-111111111111"
	caID     = "22222222-2222-2222-2222-222222222222"
	pureID   = "33333333-3333-3333-3333-333333333333"
	clientA  = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	clientB  = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	unknownC = "cccccccc-cccc-cccc-cccc-cccccccccccc"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// seed: hoy es 2024-03-15. Stock de la vista: FR 30, CA 1, PU 0.
func seed() *repotest.Memory {
	m := repotest.New()
	m.Products = []entity.Product{
		{ID: frID, Code: strPtr("FR"), Name: "Francesa estándar", WeightKG: decimal.NewNullDecimal(decimal.RequireFromString("2.5"))},
		{ID: caID, Code: strPtr("ca "), Name: "Cascos"},
		{ID: pureID, Code: strPtr("PU"), Name: "Puré"},
	}
	m.Clients = []entity.Client{{ID: clientA, Name: "Almacén Uno"}, {ID: clientB, Name: "Bodega Dos"}}
	m.Production = []entity.ProductionEntry{
		{ID: 1, Date: "2023-03-14", ProductID: frID, Packages: 100},
		{ID: 2, Date: "2024-02-10", ProductID: frID, Packages: 20},
		{ID: 3, Date: "2024-03-14", ProductID: frID, Packages: 5},
		{ID: 4, Date: "2024-03-15", ProductID: frID, Packages: 10},
		{ID: 5, Date: "2024-03-15", ProductID: caID, Packages: 3},
		{ID: 6, Date: "2024-03-15", ProductID: pureID, Packages: 7},
	}
	m.Shipments = []entity.ShipmentEntry{
		{ID: 10, Date: "2024-02-05", ProductID: frID, ClientID: clientA, Packages: 1},
		{ID: 11, Date: "2024-03-01", ProductID: caID, ClientID: clientB, Packages: 2},
		{ID: 12, Date: "2024-03-10", ProductID: pureID, ClientID: clientB, Packages: 9},
		{ID: 13, Date: "2024-03-15", ProductID: frID, ClientID: clientA, Packages: 4},
		{ID: 14, Date: "2023-01-01", ProductID: frID, ClientID: clientA, Packages: 100},
	}
	// La vista ve toda la historia, no solo la ventana del tablero.
	m.Inventory = []entity.InventorySummaryRow{
		{ProductID: frID, Code: strPtr("FR"), Name: "Francesa estándar", TotalProducedPackages: 135, TotalShippedPackages: 105, StockPackages: 30, WeightKG: decimal.NewNullDecimal(decimal.RequireFromString("2.5"))},
		{ProductID: caID, Code: strPtr("ca "), Name: "Cascos", TotalProducedPackages: 3, TotalShippedPackages: 2, StockPackages: 1},
		{ProductID: pureID, Code: strPtr("PU"), Name: "Puré", TotalProducedPackages: 7, TotalShippedPackages: 9, StockPackages: 0},
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

// loadedStore devuelve un store ya recargado sobre los datos dados.
func loadedStore(m *repotest.Memory) *dashboard.Store {
	clock := dashboard.FixedClock(testNow)
	store := dashboard.NewStore(dashboard.NewLoader(repos(m), clock, 12), logger.Nop())
	if err := store.Refresh(context.Background()); err != nil {
		panic(err)
	}
	return store
}

func settings() dashboard.Settings {
	return dashboard.Settings{HistoryDays: 30, TopClients: 6}
}

// fakeSubscriber emite los canales dados y termina.
type fakeSubscriber struct {
	channels []string
}

func (f fakeSubscriber) Listen(ctx context.Context, onChange func(channel string)) error {
	for _, ch := range f.channels {
		onChange(ch)
	}
	return context.Canceled
}

// countingLoader cuenta las cargas; falla cuando fail es true.
type countingLoader struct {
	calls int
	fail  bool
	inner dashboard.SnapshotLoader
}

func (l *countingLoader) Load(ctx context.Context) (*dashboard.Snapshot, error) {
	l.calls++
	if l.fail {
		return nil, errors.New("conexión rechazada")
	}
	return l.inner.Load(ctx)
}

func shipment(id int64, date, clientID string, packages int) entity.ShipmentEntry {
	return entity.ShipmentEntry{ID: id, Date: date, ProductID: frID, ClientID: clientID, Packages: packages}
}
