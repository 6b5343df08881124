package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

const totalLabel = "Total"

// ReportFilter mes y año elegidos. Solo con ambos se usa un rango personalizado.
type ReportFilter struct {
	Month *int
	Year  *int
}

// Custom indica si el filtro define un mes concreto.
func (f ReportFilter) Custom() bool {
	return f.Month != nil && f.Year != nil
}

// Validate verifica los rangos de mes y año presentes.
func (f ReportFilter) Validate() error {
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return fmt.Errorf("%w: mes debe estar entre 1 y 12", domain.ErrInvalidInput)
	}
	if f.Year != nil && (*f.Year < 1900 || *f.Year > 9999) {
		return fmt.Errorf("%w: año fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

// ReportUseCase arma la vista "Reportes" para un mes o para el total del snapshot.
type ReportUseCase struct {
	store    *Store
	clock    Clock
	settings Settings
	log      *logger.Logger
}

func NewReportUseCase(store *Store, clock Clock, settings Settings, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{store: store, clock: clock, settings: settings.withDefaults(), log: log}
}

// GetReport con mes concreto: totales, serie y ranking del mes, histórico desde 0.
// Sin él: totales de todo el snapshot y ventana reciente anclada en el stock actual.
func (uc *ReportUseCase) GetReport(ctx context.Context, f ReportFilter) (*dto.ReportDTO, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	r := snap.Resolver
	today := Today(uc.clock)
	grouped := inventory.GroupByCode(snap.Inventory)

	var (
		rng       *inventory.DateRange
		days      []time.Time
		anchor    inventory.Anchor
		label     = totalLabel
		shipments = snap.Shipments
	)
	if f.Custom() {
		month := inventory.MonthRange(time.Date(*f.Year, time.Month(*f.Month), 1, 0, 0, 0, 0, time.UTC))
		rng = &month
		days = month.Days()
		anchor = inventory.Anchor{Custom: true}
		label = MonthLabel(month.Start)
		shipments = inventory.FilterByRange(snap.Shipments, month)
	} else {
		window := inventory.TrailingDays(today, uc.settings.HistoryDays)
		days = window.Days()
		anchor = inventory.Anchor{CurrentTotal: inventory.TotalStock(grouped)}
	}

	prod := inventory.SumPackagesByCode(snap.Production, r, rng)
	ship := inventory.SumPackagesByCode(snap.Shipments, r, rng)
	flows, skipped := inventory.BuildFlows(days, snap.Production, snap.Shipments, r)
	if skipped > 0 {
		uc.log.Warn().Int("skipped_dates", skipped).Str("label", label).Msg("registros con fecha ilegible excluidos")
	}

	out := &dto.ReportDTO{
		Label:           label,
		Month:           f.Month,
		Year:            f.Year,
		Production:      codeTotalsDTO(prod, r),
		Shipments:       codeTotalsDTO(ship, r),
		ProductionByDay: productionByDay(days, snap.Production, r),
		TopClients:      topClients(shipments, snap, uc.settings.TopClients),
		StockHistory:    stockHistoryDTO(inventory.StockHistory(flows, anchor)),
		Inventory:       groupedInventoryDTO(grouped),
		AvailableYears:  AvailableYears(snap, today.Year()),
		Status:          uc.store.Status(),
	}
	if !f.Custom() {
		out.Month, out.Year = nil, nil
	}
	if len(days) > 0 {
		out.From = inventory.DateKey(days[0])
		out.To = inventory.DateKey(days[len(days)-1])
	}
	return out, nil
}

// AvailableYears años seleccionables: desde el menor año con datos (o el actual) hasta el mayor
// año con datos (o el actual), sin huecos. El tope es el año actual a propósito: no se ofrecen
// años futuros sin registros.
func AvailableYears(snap *Snapshot, currentYear int) []int {
	minYear, maxYear := currentYear, currentYear
	visit := func(raw string) {
		d, ok := inventory.ParseDay(raw)
		if !ok {
			return
		}
		minYear = min(minYear, d.Year())
		maxYear = max(maxYear, d.Year())
	}
	for _, e := range snap.Production {
		visit(e.Date)
	}
	for _, e := range snap.Shipments {
		visit(e.Date)
	}
	years := make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		years = append(years, y)
	}
	return years
}
