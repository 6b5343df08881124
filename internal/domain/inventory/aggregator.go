package inventory

import "github.com/jhoicas/Produccion-api/internal/domain/catalog"

// Event registro fechado de paquetes de un producto (producción o envío).
type Event interface {
	EventDate() string
	EventProductID() string
	EventPackages() int
}

// Totals paquetes por código canónico. Total == FR + CA.
// MalformedDates cuenta las filas descartadas por fecha ilegible cuando había filtro de rango.
type Totals struct {
	FR             int
	CA             int
	Total          int
	MalformedDates int
}

// Get devuelve el total del código.
func (t Totals) Get(code catalog.Code) int {
	switch code {
	case catalog.CodeFR:
		return t.FR
	case catalog.CodeCA:
		return t.CA
	}
	return 0
}

func (t *Totals) add(code catalog.Code, packages int) {
	switch code {
	case catalog.CodeFR:
		t.FR += packages
	case catalog.CodeCA:
		t.CA += packages
	default:
		return
	}
	t.Total += packages
}

// SumPackagesByCode suma paquetes por código. Con rng != nil descarta las filas fuera del
// rango y las de fecha malformada (sin abortar). Los productos no estándar no cuentan.
func SumPackagesByCode[E Event](events []E, resolver *catalog.Resolver, rng *DateRange) Totals {
	var totals Totals
	for _, ev := range events {
		if rng != nil {
			day, ok := ParseDay(ev.EventDate())
			if !ok {
				totals.MalformedDates++
				continue
			}
			if !rng.Contains(day) {
				continue
			}
		}
		code, ok := resolver.CodeForProduct(ev.EventProductID())
		if !ok {
			continue
		}
		totals.add(code, ev.EventPackages())
	}
	return totals
}

// DailyTotals totales por código de cada día con datos, indexados por clave "YYYY-MM-DD".
// Las filas con fecha malformada no tienen día y se omiten; se devuelven contadas.
func DailyTotals[E Event](events []E, resolver *catalog.Resolver) (map[string]Totals, int) {
	out := make(map[string]Totals)
	skipped := 0
	for _, ev := range events {
		day, ok := ParseDay(ev.EventDate())
		if !ok {
			skipped++
			continue
		}
		code, ok := resolver.CodeForProduct(ev.EventProductID())
		if !ok {
			continue
		}
		key := DateKey(day)
		t := out[key]
		t.add(code, ev.EventPackages())
		out[key] = t
	}
	return out, skipped
}

// FilterByRange conserva los eventos cuyo día cae en el rango; descarta fechas malformadas.
func FilterByRange[E Event](events []E, rng DateRange) []E {
	out := make([]E, 0, len(events))
	for _, ev := range events {
		day, ok := ParseDay(ev.EventDate())
		if !ok || !rng.Contains(day) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
