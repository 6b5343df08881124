// Package pdf dibuja el reporte de producción y envíos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período    │  Rango de fechas + emisión   │
//	│  TOTALES: Producción | Envíos por código (paquetes + kg)    │
//	│  INVENTARIO: código | producido | enviado | stock | kg      │
//	│  CLIENTES: ranking por paquetes enviados                     │
//	│  HISTÓRICO: stock reconstruido por día                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/export"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ export.ReportRenderer = (*ReportGenerator)(nil)

// ReportGenerator implementa export.ReportRenderer.
type ReportGenerator struct {
	appName string
	now     func() time.Time
}

// NewReportGenerator construye el generador; appName figura como autor del documento.
func NewReportGenerator(appName string) *ReportGenerator {
	return &ReportGenerator{appName: appName, now: time.Now}
}

// RenderReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) RenderReport(report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de producción - "+report.Label, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("TOTALES DEL PERÍODO"))
	m.AddRows(tableHeader([]string{"Movimiento", "FR", "CA", "Total", "Total kg"}, []int{4, 2, 2, 2, 2}))
	m.AddRows(totalsRow("Producción", report.Production))
	m.AddRows(totalsRow("Envíos", report.Shipments))

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("INVENTARIO ACTUAL"))
	m.AddRows(tableHeader([]string{"Producto", "Producido", "Enviado", "Stock", "Stock kg"}, []int{4, 2, 2, 2, 2}))
	for _, inv := range report.Inventory {
		m.AddRows(dataRow([]string{
			inv.Name,
			strconv.Itoa(inv.TotalProducedPackages),
			strconv.Itoa(inv.TotalShippedPackages),
			strconv.Itoa(inv.StockPackages),
			inv.StockKG.StringFixed(1),
		}, []int{4, 2, 2, 2, 2}))
	}

	if len(report.TopClients) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("CLIENTES CON MÁS ENVÍOS"))
		m.AddRows(tableHeader([]string{"Cliente", "Paquetes"}, []int{8, 4}))
		for _, c := range report.TopClients {
			m.AddRows(dataRow([]string{c.Name, strconv.Itoa(c.Packages)}, []int{8, 4}))
		}
	}

	if len(report.StockHistory) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("HISTÓRICO DE STOCK"))
		m.AddRows(tableHeader([]string{"Fecha", "Producción", "Stock"}, []int{4, 4, 4}))
		produced := make(map[string]int, len(report.ProductionByDay))
		for _, p := range report.ProductionByDay {
			produced[p.Date] = p.Packages
		}
		for _, p := range report.StockHistory {
			m.AddRows(dataRow([]string{p.Date, strconv.Itoa(produced[p.Date]), strconv.Itoa(p.Stock)}, []int{4, 4, 4}))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título y período (izq), rango y fecha de emisión (der).
func headerRow(report *dto.ReportDTO, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE PRODUCCIÓN Y ENVÍOS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+report.Label, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(report.From+" a "+report.To, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
	})))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func dataRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func totalsRow(label string, t dto.CodeTotalsDTO) core.Row {
	return dataRow([]string{
		label,
		strconv.Itoa(t.FR),
		strconv.Itoa(t.CA),
		strconv.Itoa(t.Total),
		t.TotalKG.StringFixed(1),
	}, []int{4, 2, 2, 2, 2})
}
