package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CodeTotalsDTO paquetes por código canónico y su equivalente en kg.
type CodeTotalsDTO struct {
	FR      int             `json:"fr"`
	CA      int             `json:"ca"`
	Total   int             `json:"total"`
	FRKG    decimal.Decimal `json:"fr_kg"`
	CAKG    decimal.Decimal `json:"ca_kg"`
	TotalKG decimal.Decimal `json:"total_kg"`
}

// StockDTO stock actual de un código.
type StockDTO struct {
	Code     string          `json:"code"`
	Label    string          `json:"label"`
	Packages int             `json:"packages"`
	KG       decimal.Decimal `json:"kg"`
}

// MonthComparisonDTO mes en curso contra el anterior.
// TrendPercent es null cuando el mes anterior no tuvo movimiento.
type MonthComparisonDTO struct {
	CurrentLabel  string           `json:"current_label"`
	PreviousLabel string           `json:"previous_label"`
	Current       CodeTotalsDTO    `json:"current"`
	Previous      CodeTotalsDTO    `json:"previous"`
	TrendPercent  *decimal.Decimal `json:"trend_percent"`
}

// DailyPackagesDTO paquetes de un día (serie de gráficos).
type DailyPackagesDTO struct {
	Date     string `json:"date"`
	Packages int    `json:"packages"`
}

// StockPointDTO saldo reconstruido de un día.
type StockPointDTO struct {
	Date  string `json:"date"`
	Stock int    `json:"stock"`
}

// ClientRankingDTO paquetes enviados a un cliente.
type ClientRankingDTO struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Packages int    `json:"packages"`
}

// GroupedInventoryDTO fila del inventario agrupado por código.
type GroupedInventoryDTO struct {
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	TotalProducedPackages int             `json:"total_produced_packages"`
	TotalShippedPackages  int             `json:"total_shipped_packages"`
	StockPackages         int             `json:"stock_packages"`
	WeightKG              decimal.Decimal `json:"weight_kg"`
	StockKG               decimal.Decimal `json:"stock_kg"`
}

// SnapshotStatusDTO estado de la última recarga de datos.
type SnapshotStatusDTO struct {
	LastUpdated *time.Time `json:"last_updated"`
	Error       *string    `json:"error"`
}

// TodayDTO movimientos del día actual.
type TodayDTO struct {
	Production CodeTotalsDTO `json:"production"`
	Shipments  CodeTotalsDTO `json:"shipments"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Date            string             `json:"date"`
	Stock           []StockDTO         `json:"stock"`
	StockTotal      int                `json:"stock_total"`
	StockTotalKG    decimal.Decimal    `json:"stock_total_kg"`
	Today           TodayDTO           `json:"today"`
	Production      MonthComparisonDTO `json:"production"`
	Shipments       MonthComparisonDTO `json:"shipments"`
	ProductionByDay []DailyPackagesDTO `json:"production_by_day"`
	TopClients      []ClientRankingDTO `json:"top_clients"`
	StockHistory    []StockPointDTO    `json:"stock_history"`
	Status          SnapshotStatusDTO  `json:"status"`
}

// ReportDTO respuesta de GET /api/reports. Label es "Total" o el mes elegido ("Febrero 2026").
type ReportDTO struct {
	Label           string                `json:"label"`
	Month           *int                  `json:"month"`
	Year            *int                  `json:"year"`
	From            string                `json:"from"`
	To              string                `json:"to"`
	Production      CodeTotalsDTO         `json:"production"`
	Shipments       CodeTotalsDTO         `json:"shipments"`
	ProductionByDay []DailyPackagesDTO    `json:"production_by_day"`
	TopClients      []ClientRankingDTO    `json:"top_clients"`
	StockHistory    []StockPointDTO       `json:"stock_history"`
	Inventory       []GroupedInventoryDTO `json:"inventory"`
	AvailableYears  []int                 `json:"available_years"`
	Status          SnapshotStatusDTO     `json:"status"`
}

// CalendarDayTotalsDTO totales de un día con movimiento.
type CalendarDayTotalsDTO struct {
	Date       string        `json:"date"`
	Production CodeTotalsDTO `json:"production"`
	Shipments  CodeTotalsDTO `json:"shipments"`
}

// CalendarMonthDTO respuesta de GET /api/calendar.
type CalendarMonthDTO struct {
	Month string                 `json:"month"`
	Label string                 `json:"label"`
	Days  []CalendarDayTotalsDTO `json:"days"`
}

// CalendarDayDTO respuesta de GET /api/calendar/day.
type CalendarDayDTO struct {
	Date       string               `json:"date"`
	Production []ProductionEntryDTO `json:"production"`
	Shipments  []ShipmentEntryDTO   `json:"shipments"`
	Totals     CalendarDayTotalsDTO `json:"totals"`
}
