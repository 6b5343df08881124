package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

func newCalendar() *dashboard.CalendarUseCase {
	return dashboard.NewCalendarUseCase(loadedStore(seed()), dashboard.FixedClock(testNow))
}

func TestGetMonth_SoloDiasConMovimientoEstandar(t *testing.T) {
	out, err := newCalendar().GetMonth(context.Background(), "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-03", out.Month)
	assert.Equal(t, "Marzo 2024", out.Label)
	dates := make([]string, 0, len(out.Days))
	for _, d := range out.Days {
		dates = append(dates, d.Date)
	}
	// El 10 solo tuvo un envío de producto no estándar.
	assert.Equal(t, []string{"2024-03-01", "2024-03-14", "2024-03-15"}, dates)
	assert.Equal(t, 2, out.Days[0].Shipments.CA)
	assert.Equal(t, 13, out.Days[2].Production.Total)
}

func TestGetMonth_VacioEsMesActual(t *testing.T) {
	out, err := newCalendar().GetMonth(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", out.Month)
}

func TestGetMonth_FormatoInvalido(t *testing.T) {
	_, err := newCalendar().GetMonth(context.Background(), "marzo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetDay_RegistrosOrdenadosConEtiquetas(t *testing.T) {
	out, err := newCalendar().GetDay(context.Background(), "2024-03-15")
	require.NoError(t, err)

	require.Len(t, out.Production, 3)
	assert.Equal(t, []int64{4, 5, 6}, []int64{out.Production[0].ID, out.Production[1].ID, out.Production[2].ID})
	assert.Equal(t, "Papa a la francesa (2.5 kg)", out.Production[0].ProductLabel)
	assert.Equal(t, "Papas en cascos (2.5 kg)", out.Production[1].ProductLabel)
	assert.Equal(t, "Puré", out.Production[2].ProductLabel)
	assert.Equal(t, 13, out.Totals.Production.Total)

	require.Len(t, out.Shipments, 1)
	assert.Equal(t, "Almacén Uno", out.Shipments[0].ClientName)
	assert.Equal(t, 4, out.Totals.Shipments.FR)
}

func TestGetDay_FechaInvalida(t *testing.T) {
	for _, raw := range []string{"", "2024-3-5", "15/03/2024"} {
		_, err := newCalendar().GetDay(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}
