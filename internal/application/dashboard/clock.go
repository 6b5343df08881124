package dashboard

import (
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

// Clock fuente de la hora actual; "hoy" y los meses se calculan en su zona horaria.
type Clock interface {
	Now() time.Time
}

// ZoneClock reloj del sistema en una zona fija.
type ZoneClock struct {
	Location *time.Location
}

func (c ZoneClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock reloj detenido, para pruebas y exportaciones reproducibles.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today día calendario actual según el reloj.
func Today(c Clock) time.Time {
	return inventory.DayOf(c.Now())
}
