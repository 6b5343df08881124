package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/entries"
	"github.com/jhoicas/Produccion-api/internal/application/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	Store      *dashboard.Store
	SummaryUC  *dashboard.SummaryUseCase
	ReportUC   *dashboard.ReportUseCase
	CalendarUC *dashboard.CalendarUseCase
	CatalogUC  *dashboard.CatalogUseCase
	EntriesUC  *entries.UseCase
	ExportUC   *export.UseCase
	JWTSecret  string // vacío = escrituras abiertas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.AppName, deps.Store).Health)

	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/options", catalogHandler.ProductOptions)
	api.Get("/clients", catalogHandler.ListClients)
	api.Get("/inventory", catalogHandler.Inventory)

	dashboardHandler := NewDashboardHandler(deps.Store, deps.SummaryUC, deps.ReportUC, deps.CalendarUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	api.Get("/reports", dashboardHandler.GetReport)
	api.Get("/calendar", dashboardHandler.GetCalendarMonth)
	api.Get("/calendar/day", dashboardHandler.GetCalendarDay)
	api.Post("/refresh", auth, dashboardHandler.Refresh)

	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/reports/pdf", exportHandler.ReportPDF)
	api.Get("/exports/production.csv", exportHandler.ProductionCSV)
	api.Get("/exports/shipments.csv", exportHandler.ShipmentsCSV)

	// Escrituras (protegidas cuando hay secreto configurado)
	entriesHandler := NewEntriesHandler(deps.EntriesUC)
	production := api.Group("/production")
	production.Get("/", entriesHandler.ListProduction)
	production.Post("/", auth, entriesHandler.CreateProduction)
	production.Put("/:id", auth, entriesHandler.UpdateProduction)
	production.Delete("/:id", auth, entriesHandler.DeleteProduction)

	shipments := api.Group("/shipments")
	shipments.Get("/", entriesHandler.ListShipments)
	shipments.Post("/", auth, entriesHandler.CreateShipment)
	shipments.Put("/:id", auth, entriesHandler.UpdateShipment)
	shipments.Delete("/:id", auth, entriesHandler.DeleteShipment)
}
