// Package inventory contiene el motor de reconciliación: agregación de eventos por código,
// agrupación del inventario, reconstrucción del histórico de stock y tendencias.
// Todas las funciones son puras sobre un snapshot ya cargado en memoria.
package inventory

import "time"

// DateLayout formato de día usado por el almacén y como clave de agrupación.
const DateLayout = "2006-01-02"

// DateRange intervalo de días calendario, inclusivo en ambos extremos.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si el día cae dentro del rango (se ignora la hora).
func (r DateRange) Contains(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(DayOf(r.Start)) && !d.After(DayOf(r.End))
}

// Days enumera los días del rango en orden cronológico.
func (r DateRange) Days() []time.Time {
	return EachDay(r.Start, r.End)
}

// MonthRange rango del mes calendario que contiene t.
func MonthRange(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// TrailingDays rango de n días que termina en end (inclusive).
func TrailingDays(end time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	e := DayOf(end)
	return DateRange{Start: e.AddDate(0, 0, -(n - 1)), End: e}
}

// DayOf trunca a la fecha calendario, conservando año/mes/día de la zona de t.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EachDay días desde start hasta end inclusive; vacío si end < start.
func EachDay(start, end time.Time) []time.Time {
	s, e := DayOf(start), DayOf(end)
	if e.Before(s) {
		return nil
	}
	days := make([]time.Time, 0, int(e.Sub(s).Hours()/24)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateKey clave "YYYY-MM-DD" del día.
func DateKey(day time.Time) string {
	return DayOf(day).Format(DateLayout)
}

// ParseDay interpreta la fecha de un registro. Acepta exactamente "2025-02-01" o un timestamp
// RFC 3339 ("2025-02-01T00:00:00.000Z"), del que se toma el día calendario escrito.
// Cualquier otro texto es una fecha malformada.
func ParseDay(raw string) (time.Time, bool) {
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, true
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), true
}
