package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/export"
)

// ExportHandler descargas CSV y PDF.
type ExportHandler struct {
	uc *export.UseCase
}

func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ProductionCSV godoc
// @Summary      Exporta toda la producción en CSV
// @Tags         exports
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/production.csv [get]
func (h *ExportHandler) ProductionCSV(c *fiber.Ctx) error {
	csv, err := h.uc.ProductionCSV(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, export.ProductionFilename, csv)
}

// ShipmentsCSV GET /api/exports/shipments.csv
func (h *ExportHandler) ShipmentsCSV(c *fiber.Ctx) error {
	csv, err := h.uc.ShipmentsCSV(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, export.ShipmentsFilename, csv)
}

// ReportPDF godoc
// @Summary      Reporte en PDF
// @Tags         exports
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes 1-12"
// @Param        year   query  int  false  "Año"
// @Success      200  {file}  binary
// @Router       /api/reports/pdf [get]
func (h *ExportHandler) ReportPDF(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	pdf, err := h.uc.ReportPDF(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ReportFilename+`"`)
	return c.Send(pdf)
}

func sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(body)
}
