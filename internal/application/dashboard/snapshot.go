// Package dashboard carga el snapshot de datos del almacén y arma a partir de él las vistas
// del tablero (resumen, reportes, calendario, catálogo).
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

const fallbackClientName = "Cliente"

// Snapshot datos leídos en una recarga. Inmutable una vez publicado.
type Snapshot struct {
	Products   []entity.Product
	Clients    []entity.Client
	Production []entity.ProductionEntry
	Shipments  []entity.ShipmentEntry
	Inventory  []entity.InventorySummaryRow
	Resolver   *catalog.Resolver
	LoadedAt   time.Time

	clientNames map[string]string
}

// NewSnapshot indexa catálogo y clientes.
func NewSnapshot(
	products []entity.Product,
	clients []entity.Client,
	production []entity.ProductionEntry,
	shipments []entity.ShipmentEntry,
	inventory []entity.InventorySummaryRow,
	loadedAt time.Time,
) *Snapshot {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return &Snapshot{
		Products:    products,
		Clients:     clients,
		Production:  production,
		Shipments:   shipments,
		Inventory:   inventory,
		Resolver:    catalog.NewResolver(products),
		LoadedAt:    loadedAt,
		clientNames: names,
	}
}

// EmptySnapshot snapshot sin datos; sirve para etiquetar cuando aún no hubo recarga.
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil, nil, nil, nil, nil, time.Time{})
}

// ClientName nombre del cliente o "Cliente" si no se conoce.
func (s *Snapshot) ClientName(clientID string) string {
	if name, ok := s.clientNames[clientID]; ok && name != "" {
		return name
	}
	return fallbackClientName
}

// ProductionEntryDTO arma la fila de listado de un registro de producción.
func (s *Snapshot) ProductionEntryDTO(e entity.ProductionEntry) dto.ProductionEntryDTO {
	return dto.ProductionEntryDTO{
		ID:           e.ID,
		Date:         e.Date,
		ProductID:    e.ProductID,
		ProductLabel: s.Resolver.ProductLabel(e.ProductID),
		Packages:     e.Packages,
		WeightKG:     s.weight(e.ProductID, e.Packages),
		Notes:        e.Notes,
	}
}

// ShipmentEntryDTO arma la fila de listado de un envío.
func (s *Snapshot) ShipmentEntryDTO(e entity.ShipmentEntry) dto.ShipmentEntryDTO {
	return dto.ShipmentEntryDTO{
		ID:           e.ID,
		Date:         e.Date,
		ProductID:    e.ProductID,
		ProductLabel: s.Resolver.ProductLabel(e.ProductID),
		ClientID:     e.ClientID,
		ClientName:   s.ClientName(e.ClientID),
		Packages:     e.Packages,
		WeightKG:     s.weight(e.ProductID, e.Packages),
		Notes:        e.Notes,
	}
}

func (s *Snapshot) weight(productID string, packages int) decimal.Decimal {
	return s.Resolver.WeightForProduct(productID).Mul(decimal.NewFromInt(int64(packages)))
}
