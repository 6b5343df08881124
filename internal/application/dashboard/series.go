package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel etiqueta legible del mes, ej: "Febrero 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// codeTotalsDTO agrega kg usando el peso del producto canónico de cada código.
func codeTotalsDTO(t inventory.Totals, r *catalog.Resolver) dto.CodeTotalsDTO {
	frKG := r.WeightForCode(catalog.CodeFR).Mul(decimal.NewFromInt(int64(t.FR)))
	caKG := r.WeightForCode(catalog.CodeCA).Mul(decimal.NewFromInt(int64(t.CA)))
	return dto.CodeTotalsDTO{
		FR:      t.FR,
		CA:      t.CA,
		Total:   t.Total,
		FRKG:    frKG,
		CAKG:    caKG,
		TotalKG: frKG.Add(caKG),
	}
}

// productionByDay paquetes estándar producidos en cada día de la lista.
func productionByDay(days []time.Time, production []entity.ProductionEntry, r *catalog.Resolver) []dto.DailyPackagesDTO {
	daily, _ := inventory.DailyTotals(production, r)
	out := make([]dto.DailyPackagesDTO, 0, len(days))
	for _, d := range days {
		key := inventory.DateKey(d)
		out = append(out, dto.DailyPackagesDTO{Date: key, Packages: daily[key].Total})
	}
	return out
}

// topClients ranking de clientes por paquetes enviados (todos los productos), desempate por nombre.
func topClients(shipments []entity.ShipmentEntry, snap *Snapshot, limit int) []dto.ClientRankingDTO {
	totals := make(map[string]int)
	for _, s := range shipments {
		totals[s.ClientID] += s.Packages
	}
	out := make([]dto.ClientRankingDTO, 0, len(totals))
	for id, packages := range totals {
		out = append(out, dto.ClientRankingDTO{ClientID: id, Name: snap.ClientName(id), Packages: packages})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Packages != out[j].Packages {
			return out[i].Packages > out[j].Packages
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ClientID < out[j].ClientID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func stockHistoryDTO(points []inventory.StockPoint) []dto.StockPointDTO {
	out := make([]dto.StockPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.StockPointDTO{Date: inventory.DateKey(p.Day), Stock: p.Stock})
	}
	return out
}

func groupedInventoryDTO(groups []inventory.GroupedInventory) []dto.GroupedInventoryDTO {
	out := make([]dto.GroupedInventoryDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupedInventoryDTO{
			Code:                  string(g.Code),
			Name:                  g.Name,
			TotalProducedPackages: g.TotalProducedPackages,
			TotalShippedPackages:  g.TotalShippedPackages,
			StockPackages:         g.StockPackages,
			WeightKG:              g.WeightKG,
			StockKG:               g.WeightKG.Mul(decimal.NewFromInt(int64(g.StockPackages))),
		})
	}
	return out
}

func trendPointer(current, previous int) *decimal.Decimal {
	t, ok := inventory.Trend(current, previous)
	if !ok {
		return nil
	}
	t = t.Round(1)
	return &t
}
