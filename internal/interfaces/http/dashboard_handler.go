package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// DashboardHandler vistas del tablero: resumen, reportes, calendario y recarga.
type DashboardHandler struct {
	store    *dashboard.Store
	summary  *dashboard.SummaryUseCase
	reports  *dashboard.ReportUseCase
	calendar *dashboard.CalendarUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	store *dashboard.Store,
	summary *dashboard.SummaryUseCase,
	reports *dashboard.ReportUseCase,
	calendar *dashboard.CalendarUseCase,
) *DashboardHandler {
	return &DashboardHandler{store: store, summary: summary, reports: reports, calendar: calendar}
}

// GetSummary godoc
// @Summary      Resumen del tablero
// @Description  Stock actual, movimientos de hoy, mes actual contra el anterior, serie de
// @Description  producción, clientes con más envíos e histórico de stock
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.summary.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Reporte por mes o total
// @Description  Con month y year se reporta ese mes (histórico desde 0); sin ellos, "Total"
// @Tags         dashboard
// @Produce      json
// @Param        month  query  int  false  "Mes 1-12"
// @Param        year   query  int  false  "Año"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.reports.GetReport(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetCalendarMonth GET /api/calendar?month=YYYY-MM
func (h *DashboardHandler) GetCalendarMonth(c *fiber.Ctx) error {
	out, err := h.calendar.GetMonth(c.Context(), c.Query("month"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetCalendarDay GET /api/calendar/day?date=YYYY-MM-DD
func (h *DashboardHandler) GetCalendarDay(c *fiber.Ctx) error {
	out, err := h.calendar.GetDay(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recarga los datos del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SnapshotStatusDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	if err := h.store.Refresh(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REFRESH_FAILED", Message: err.Error()})
	}
	return c.JSON(h.store.Status())
}

// reportFilter lee month y year opcionales de la query.
func reportFilter(c *fiber.Ctx) (dashboard.ReportFilter, error) {
	var f dashboard.ReportFilter
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "month debe ser numérico")
		}
		f.Month = &m
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "year debe ser numérico")
		}
		f.Year = &y
	}
	return f, nil
}
