package inventory

import (
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
)

// DailyFlow paquetes producidos y enviados en un día.
type DailyFlow struct {
	Day      time.Time
	Produced int
	Shipped  int
}

// Net producido menos enviado.
func (f DailyFlow) Net() int { return f.Produced - f.Shipped }

// StockPoint saldo reconstruido de un día.
type StockPoint struct {
	Day   time.Time
	Stock int
}

// Anchor define el saldo inicial del recorrido.
// Custom: rango elegido por el usuario, arranca en 0 (no se infiere stock previo al rango).
// Si no, se despeja desde el stock actual conocido: CurrentTotal − Σ net.
type Anchor struct {
	Custom       bool
	CurrentTotal int
}

// Start saldo inicial para los flujos dados.
func (a Anchor) Start(flows []DailyFlow) int {
	if a.Custom {
		return 0
	}
	netSum := 0
	for _, f := range flows {
		netSum += f.Net()
	}
	return a.CurrentTotal - netSum
}

// StockHistory recorre los días en orden acumulando el neto diario; el saldo nunca baja de 0.
func StockHistory(flows []DailyFlow, anchor Anchor) []StockPoint {
	balance := anchor.Start(flows)
	points := make([]StockPoint, 0, len(flows))
	for _, f := range flows {
		balance = max(balance+f.Net(), 0)
		points = append(points, StockPoint{Day: f.Day, Stock: balance})
	}
	return points
}

// BuildFlows arma los flujos diarios de los días dados (sumando FR y CA; los productos no
// estándar y las fechas malformadas quedan fuera). Devuelve además las filas descartadas
// por fecha ilegible.
func BuildFlows[P Event, S Event](days []time.Time, production []P, shipments []S, resolver *catalog.Resolver) ([]DailyFlow, int) {
	produced, skippedP := DailyTotals(production, resolver)
	shipped, skippedS := DailyTotals(shipments, resolver)
	flows := make([]DailyFlow, 0, len(days))
	for _, d := range days {
		key := DateKey(d)
		flows = append(flows, DailyFlow{
			Day:      DayOf(d),
			Produced: produced[key].Total,
			Shipped:  shipped[key].Total,
		})
	}
	return flows, skippedP + skippedS
}
