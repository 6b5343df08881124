package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Settings parámetros de las vistas del tablero.
type Settings struct {
	HistoryDays int // ventana del histórico de stock y de la serie diaria
	TopClients  int // tamaño del ranking de clientes
}

func (s Settings) withDefaults() Settings {
	if s.HistoryDays < 1 {
		s.HistoryDays = 30
	}
	if s.TopClients < 1 {
		s.TopClients = 6
	}
	return s
}

// SummaryUseCase arma la vista "Resumen": stock actual, movimientos de hoy, comparación
// mensual, serie de producción, ranking de clientes e histórico de stock.
type SummaryUseCase struct {
	store    *Store
	clock    Clock
	settings Settings
	log      *logger.Logger
}

func NewSummaryUseCase(store *Store, clock Clock, settings Settings, log *logger.Logger) *SummaryUseCase {
	return &SummaryUseCase{store: store, clock: clock, settings: settings.withDefaults(), log: log}
}

// GetSummary calcula el resumen sobre el último snapshot.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	r := snap.Resolver
	today := Today(uc.clock)
	todayRange := inventory.DateRange{Start: today, End: today}
	month := inventory.MonthRange(today)
	prevMonth := inventory.MonthRange(month.Start.AddDate(0, 0, -1))

	// ── Stock actual (vista agrupada) ─────────────────────────────────────────
	grouped := inventory.GroupByCode(snap.Inventory)
	stock := make([]dto.StockDTO, 0, len(catalog.StandardCodes))
	stockKG := decimal.Zero
	for _, g := range grouped {
		kg := g.WeightKG.Mul(decimal.NewFromInt(int64(g.StockPackages)))
		stockKG = stockKG.Add(kg)
		stock = append(stock, dto.StockDTO{Code: string(g.Code), Label: g.Name, Packages: g.StockPackages, KG: kg})
	}
	currentTotal := inventory.TotalStock(grouped)

	// ── Movimientos por período ───────────────────────────────────────────────
	prodToday := inventory.SumPackagesByCode(snap.Production, r, &todayRange)
	shipToday := inventory.SumPackagesByCode(snap.Shipments, r, &todayRange)
	prodMonth := inventory.SumPackagesByCode(snap.Production, r, &month)
	prodPrev := inventory.SumPackagesByCode(snap.Production, r, &prevMonth)
	shipMonth := inventory.SumPackagesByCode(snap.Shipments, r, &month)
	shipPrev := inventory.SumPackagesByCode(snap.Shipments, r, &prevMonth)

	window := inventory.TrailingDays(today, uc.settings.HistoryDays)
	flows, skipped := inventory.BuildFlows(window.Days(), snap.Production, snap.Shipments, r)
	history := inventory.StockHistory(flows, inventory.Anchor{CurrentTotal: currentTotal})

	if skipped > 0 {
		uc.log.Warn().Int("skipped_dates", skipped).Msg("registros con fecha ilegible excluidos")
	}

	return &dto.DashboardSummaryDTO{
		Date:         inventory.DateKey(today),
		Stock:        stock,
		StockTotal:   currentTotal,
		StockTotalKG: stockKG,
		Today: dto.TodayDTO{
			Production: codeTotalsDTO(prodToday, r),
			Shipments:  codeTotalsDTO(shipToday, r),
		},
		Production: dto.MonthComparisonDTO{
			CurrentLabel:  MonthLabel(month.Start),
			PreviousLabel: MonthLabel(prevMonth.Start),
			Current:       codeTotalsDTO(prodMonth, r),
			Previous:      codeTotalsDTO(prodPrev, r),
			TrendPercent:  trendPointer(prodMonth.Total, prodPrev.Total),
		},
		Shipments: dto.MonthComparisonDTO{
			CurrentLabel:  MonthLabel(month.Start),
			PreviousLabel: MonthLabel(prevMonth.Start),
			Current:       codeTotalsDTO(shipMonth, r),
			Previous:      codeTotalsDTO(shipPrev, r),
			TrendPercent:  trendPointer(shipMonth.Total, shipPrev.Total),
		},
		ProductionByDay: productionByDay(window.Days(), snap.Production, r),
		TopClients:      topClients(inventory.FilterByRange(snap.Shipments, month), snap, uc.settings.TopClients),
		StockHistory:    stockHistoryDTO(history),
		Status:          uc.store.Status(),
	}, nil
}
