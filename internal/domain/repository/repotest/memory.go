// Package repotest implementa los puertos de repositorio en memoria para pruebas.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository          = (*Memory)(nil)
	_ repository.ClientRepository           = (*ClientsView)(nil)
	_ repository.ProductionRepository       = (*ProductionView)(nil)
	_ repository.ShipmentRepository         = (*ShipmentsView)(nil)
	_ repository.InventorySummaryRepository = (*InventoryView)(nil)
)

// Memory almacén en memoria. Los métodos List* respetan el orden que promete cada puerto.
// Err, si no es nil, se devuelve en toda lectura.
type Memory struct {
	mu         sync.Mutex
	Products   []entity.Product
	Clients    []entity.Client
	Production []entity.ProductionEntry
	Shipments  []entity.ShipmentEntry
	Inventory  []entity.InventorySummaryRow
	Err        error
	nextID     int64
}

// New almacén vacío.
func New() *Memory { return &Memory{nextID: 1} }

// ListByName implementa ProductRepository.
func (m *Memory) ListByName(ctx context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]entity.Product(nil), m.Products...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ClientsRepo, ProductionRepo, ShipmentsRepo e InventoryRepo exponen los demás puertos.
func (m *Memory) ClientsRepo() *ClientsView       { return &ClientsView{m} }
func (m *Memory) ProductionRepo() *ProductionView { return &ProductionView{m} }
func (m *Memory) ShipmentsRepo() *ShipmentsView   { return &ShipmentsView{m} }
func (m *Memory) InventoryRepo() *InventoryView   { return &InventoryView{m} }

func (m *Memory) id() int64 {
	if m.nextID == 0 {
		m.nextID = 1
	}
	for _, e := range m.Production {
		m.nextID = max(m.nextID, e.ID+1)
	}
	for _, e := range m.Shipments {
		m.nextID = max(m.nextID, e.ID+1)
	}
	id := m.nextID
	m.nextID++
	return id
}

// ClientsView puerto de clientes.
type ClientsView struct{ m *Memory }

func (v *ClientsView) ListByName(ctx context.Context) ([]entity.Client, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	if v.m.Err != nil {
		return nil, v.m.Err
	}
	out := append([]entity.Client(nil), v.m.Clients...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// InventoryView puerto de la vista de inventario.
type InventoryView struct{ m *Memory }

func (v *InventoryView) ListByName(ctx context.Context) ([]entity.InventorySummaryRow, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	if v.m.Err != nil {
		return nil, v.m.Err
	}
	out := append([]entity.InventorySummaryRow(nil), v.m.Inventory...)
	if v.m.Inventory == nil {
		out = v.m.summarize()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// summarize calcula la vista como lo hace la base: totales por producto y stock recortado a 0.
func (m *Memory) summarize() []entity.InventorySummaryRow {
	produced := make(map[string]int)
	shipped := make(map[string]int)
	for _, e := range m.Production {
		produced[e.ProductID] += e.Packages
	}
	for _, e := range m.Shipments {
		shipped[e.ProductID] += e.Packages
	}
	out := make([]entity.InventorySummaryRow, 0, len(m.Products))
	for _, p := range m.Products {
		out = append(out, entity.InventorySummaryRow{
			ProductID:             p.ID,
			Code:                  p.Code,
			Name:                  p.Name,
			TotalProducedPackages: produced[p.ID],
			TotalShippedPackages:  shipped[p.ID],
			StockPackages:         max(produced[p.ID]-shipped[p.ID], 0),
			WeightKG:              p.WeightKG,
		})
	}
	return out
}

// ProductionView puerto de producción.
type ProductionView struct{ m *Memory }

func (v *ProductionView) ListSince(ctx context.Context, since time.Time) ([]entity.ProductionEntry, error) {
	return v.filter(func(e entity.ProductionEntry) bool { return e.Date >= inventory.DateKey(since) }, true)
}

func (v *ProductionView) ListAll(ctx context.Context) ([]entity.ProductionEntry, error) {
	return v.filter(func(entity.ProductionEntry) bool { return true }, true)
}

func (v *ProductionView) List(ctx context.Context, date *string) ([]entity.ProductionEntry, error) {
	return v.filter(func(e entity.ProductionEntry) bool { return date == nil || e.Date == *date }, false)
}

func (v *ProductionView) filter(keep func(entity.ProductionEntry) bool, asc bool) ([]entity.ProductionEntry, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	if v.m.Err != nil {
		return nil, v.m.Err
	}
	out := make([]entity.ProductionEntry, 0)
	for _, e := range v.m.Production {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return (out[i].Date < out[j].Date) == asc
		}
		return (out[i].ID < out[j].ID) == asc
	})
	return out, nil
}

func (v *ProductionView) GetByID(ctx context.Context, id int64) (*entity.ProductionEntry, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for _, e := range v.m.Production {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (v *ProductionView) Create(ctx context.Context, entry *entity.ProductionEntry) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	entry.ID = v.m.id()
	v.m.Production = append(v.m.Production, *entry)
	return nil
}

func (v *ProductionView) Update(ctx context.Context, entry *entity.ProductionEntry) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for i, e := range v.m.Production {
		if e.ID == entry.ID {
			v.m.Production[i] = *entry
			return nil
		}
	}
	return domain.ErrNotFound
}

func (v *ProductionView) Delete(ctx context.Context, id int64) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for i, e := range v.m.Production {
		if e.ID == id {
			v.m.Production = append(v.m.Production[:i], v.m.Production[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ShipmentsView puerto de envíos.
type ShipmentsView struct{ m *Memory }

func (v *ShipmentsView) ListSince(ctx context.Context, since time.Time) ([]entity.ShipmentEntry, error) {
	return v.filter(func(e entity.ShipmentEntry) bool { return e.Date >= inventory.DateKey(since) }, true)
}

func (v *ShipmentsView) ListAll(ctx context.Context) ([]entity.ShipmentEntry, error) {
	return v.filter(func(entity.ShipmentEntry) bool { return true }, true)
}

func (v *ShipmentsView) List(ctx context.Context, date *string) ([]entity.ShipmentEntry, error) {
	return v.filter(func(e entity.ShipmentEntry) bool { return date == nil || e.Date == *date }, false)
}

func (v *ShipmentsView) filter(keep func(entity.ShipmentEntry) bool, asc bool) ([]entity.ShipmentEntry, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	if v.m.Err != nil {
		return nil, v.m.Err
	}
	out := make([]entity.ShipmentEntry, 0)
	for _, e := range v.m.Shipments {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return (out[i].Date < out[j].Date) == asc
		}
		return (out[i].ID < out[j].ID) == asc
	})
	return out, nil
}

func (v *ShipmentsView) GetByID(ctx context.Context, id int64) (*entity.ShipmentEntry, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for _, e := range v.m.Shipments {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (v *ShipmentsView) Create(ctx context.Context, entry *entity.ShipmentEntry) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	entry.ID = v.m.id()
	v.m.Shipments = append(v.m.Shipments, *entry)
	return nil
}

func (v *ShipmentsView) Update(ctx context.Context, entry *entity.ShipmentEntry) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for i, e := range v.m.Shipments {
		if e.ID == entry.ID {
			v.m.Shipments[i] = *entry
			return nil
		}
	}
	return domain.ErrNotFound
}

func (v *ShipmentsView) Delete(ctx context.Context, id int64) error {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	for i, e := range v.m.Shipments {
		if e.ID == id {
			v.m.Shipments = append(v.m.Shipments[:i], v.m.Shipments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
