package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

const monthLayout = "2006-01"

// CalendarUseCase totales diarios de un mes y detalle de un día.
type CalendarUseCase struct {
	store *Store
	clock Clock
}

func NewCalendarUseCase(store *Store, clock Clock) *CalendarUseCase {
	return &CalendarUseCase{store: store, clock: clock}
}

// GetMonth totales por código de cada día del mes con movimiento. month vacío = mes actual.
func (uc *CalendarUseCase) GetMonth(ctx context.Context, month string) (*dto.CalendarMonthDTO, error) {
	start := Today(uc.clock)
	if month != "" {
		t, err := time.Parse(monthLayout, month)
		if err != nil {
			return nil, fmt.Errorf("%w: mes debe tener formato YYYY-MM", domain.ErrInvalidInput)
		}
		start = t
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	rng := inventory.MonthRange(start)
	produced, _ := inventory.DailyTotals(snap.Production, snap.Resolver)
	shipped, _ := inventory.DailyTotals(snap.Shipments, snap.Resolver)

	days := make([]dto.CalendarDayTotalsDTO, 0)
	for _, d := range rng.Days() {
		key := inventory.DateKey(d)
		p, hasP := produced[key]
		s, hasS := shipped[key]
		if !hasP && !hasS {
			continue
		}
		days = append(days, dto.CalendarDayTotalsDTO{
			Date:       key,
			Production: codeTotalsDTO(p, snap.Resolver),
			Shipments:  codeTotalsDTO(s, snap.Resolver),
		})
	}
	return &dto.CalendarMonthDTO{
		Month: rng.Start.Format(monthLayout),
		Label: MonthLabel(rng.Start),
		Days:  days,
	}, nil
}

// GetDay registros del día ordenados por id, con etiquetas y totales.
func (uc *CalendarUseCase) GetDay(ctx context.Context, date string) (*dto.CalendarDayDTO, error) {
	day, ok := parseExactDay(date)
	if !ok {
		return nil, fmt.Errorf("%w: fecha debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	rng := inventory.DateRange{Start: day, End: day}

	production := inventory.FilterByRange(snap.Production, rng)
	sort.SliceStable(production, func(i, j int) bool { return production[i].ID < production[j].ID })
	shipments := inventory.FilterByRange(snap.Shipments, rng)
	sort.SliceStable(shipments, func(i, j int) bool { return shipments[i].ID < shipments[j].ID })

	out := &dto.CalendarDayDTO{
		Date:       date,
		Production: make([]dto.ProductionEntryDTO, 0, len(production)),
		Shipments:  make([]dto.ShipmentEntryDTO, 0, len(shipments)),
		Totals: dto.CalendarDayTotalsDTO{
			Date:       date,
			Production: codeTotalsDTO(inventory.SumPackagesByCode(production, snap.Resolver, nil), snap.Resolver),
			Shipments:  codeTotalsDTO(inventory.SumPackagesByCode(shipments, snap.Resolver, nil), snap.Resolver),
		},
	}
	for _, e := range production {
		out.Production = append(out.Production, snap.ProductionEntryDTO(e))
	}
	for _, e := range shipments {
		out.Shipments = append(out.Shipments, snap.ShipmentEntryDTO(e))
	}
	return out, nil
}

// parseExactDay acepta solo "YYYY-MM-DD" completo.
func parseExactDay(raw string) (time.Time, bool) {
	if len(raw) != len(inventory.DateLayout) {
		return time.Time{}, false
	}
	return inventory.ParseDay(raw)
}
