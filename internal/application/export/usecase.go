// Package export genera los archivos descargables: CSV de producción y envíos, y el reporte PDF.
package export

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/pkg/tabular"
)

// Nombres de archivo sugeridos en Content-Disposition.
const (
	ProductionFilename = "produccion.csv"
	ShipmentsFilename  = "envios.csv"
	ReportFilename     = "reporte.pdf"
)

// ReportRenderer dibuja un reporte como PDF.
type ReportRenderer interface {
	RenderReport(report *dto.ReportDTO) ([]byte, error)
}

// ReportSource calcula el reporte a exportar.
type ReportSource interface {
	GetReport(ctx context.Context, f dashboard.ReportFilter) (*dto.ReportDTO, error)
}

// UseCase exportaciones. Los CSV leen todas las filas del almacén, no la ventana del tablero.
type UseCase struct {
	repos    dashboard.Repositories
	reports  ReportSource
	renderer ReportRenderer
}

func NewUseCase(repos dashboard.Repositories, reports ReportSource, renderer ReportRenderer) *UseCase {
	return &UseCase{repos: repos, reports: reports, renderer: renderer}
}

// ProductionCSV columnas: fecha, producto, paquetes, peso_kg, notas.
func (uc *UseCase) ProductionCSV(ctx context.Context) (string, error) {
	var rows []entity.ProductionEntry
	snap, err := uc.load(ctx, func(gctx context.Context) (err error) {
		rows, err = uc.repos.Production.ListAll(gctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("export producción: %w", err)
	}
	records := make([]tabular.Record, 0, len(rows))
	for _, e := range rows {
		d := snap.ProductionEntryDTO(e)
		records = append(records, tabular.Record{
			{Key: "fecha", Value: d.Date},
			{Key: "producto", Value: d.ProductLabel},
			{Key: "paquetes", Value: d.Packages},
			{Key: "peso_kg", Value: d.WeightKG},
			{Key: "notas", Value: d.Notes},
		})
	}
	return tabular.ToCSV(records), nil
}

// ShipmentsCSV columnas: fecha, cliente, producto, paquetes, peso_kg, notas.
func (uc *UseCase) ShipmentsCSV(ctx context.Context) (string, error) {
	var rows []entity.ShipmentEntry
	snap, err := uc.load(ctx, func(gctx context.Context) (err error) {
		rows, err = uc.repos.Shipments.ListAll(gctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("export envíos: %w", err)
	}
	records := make([]tabular.Record, 0, len(rows))
	for _, e := range rows {
		d := snap.ShipmentEntryDTO(e)
		records = append(records, tabular.Record{
			{Key: "fecha", Value: d.Date},
			{Key: "cliente", Value: d.ClientName},
			{Key: "producto", Value: d.ProductLabel},
			{Key: "paquetes", Value: d.Packages},
			{Key: "peso_kg", Value: d.WeightKG},
			{Key: "notas", Value: d.Notes},
		})
	}
	return tabular.ToCSV(records), nil
}

// ReportPDF reporte del mes elegido (o total) en PDF.
func (uc *UseCase) ReportPDF(ctx context.Context, f dashboard.ReportFilter) ([]byte, error) {
	report, err := uc.reports.GetReport(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderReport(report)
}

// load lee catálogo y clientes junto con las filas a exportar.
func (uc *UseCase) load(ctx context.Context, rows func(context.Context) error) (*dashboard.Snapshot, error) {
	var (
		products []entity.Product
		clients  []entity.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = uc.repos.Products.ListByName(gctx)
		return err
	})
	g.Go(func() (err error) {
		clients, err = uc.repos.Clients.ListByName(gctx)
		return err
	})
	g.Go(func() error { return rows(gctx) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard.NewSnapshot(products, clients, nil, nil, nil, time.Time{}), nil
}
