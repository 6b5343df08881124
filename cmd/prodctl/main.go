// prodctl tareas de operación: migraciones, exportaciones y tokens de operador.
//
// Uso:
//
//	prodctl migrate
//	prodctl export --kind production --out ./salida
//	prodctl export --kind report --month 2 --year 2026 --out ./salida
//	prodctl token --operator turno-tarde --minutes 720
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/export"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/jwt"
	"github.com/jhoicas/Produccion-api/pkg/logger"
	"github.com/jhoicas/Produccion-api/pkg/tabular"
)

func main() {
	app := &cli.App{
		Name:  "prodctl",
		Usage: "operación de Producción API",
		Commands: []*cli.Command{
			migrateCommand(),
			exportCommand(),
			tokenCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "prodctl:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr}), nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica las migraciones embebidas",
		Action: func(c *cli.Context) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			version, err := postgres.Migrate(cfg.DB.ConnectionString())
			if err != nil {
				return err
			}
			log.Info().Uint("version", version).Msg("migraciones aplicadas")
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "escribe produccion.csv, envios.csv o reporte.pdf",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Value: "production", Usage: "production | shipments | report"},
			&cli.StringFlag{Name: "out", Value: ".", Usage: "directorio de salida"},
			&cli.BoolFlag{Name: "windows1252", Usage: "CSV en Windows-1252 en lugar de UTF-8"},
			&cli.IntFlag{Name: "month", Usage: "mes del reporte (1-12)"},
			&cli.IntFlag{Name: "year", Usage: "año del reporte"},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := c.Context
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			repos := dashboard.Repositories{
				Products:   postgres.NewProductRepository(pool),
				Clients:    postgres.NewClientRepository(pool),
				Production: postgres.NewProductionRepository(pool),
				Shipments:  postgres.NewShipmentRepository(pool),
				Inventory:  postgres.NewInventorySummaryRepository(pool),
			}
			clock := dashboard.ZoneClock{Location: cfg.App.Location()}
			store := dashboard.NewStore(dashboard.NewLoader(repos, clock, cfg.Dashboard.TrailingMonths), log)
			reports := dashboard.NewReportUseCase(store, clock, dashboard.Settings{
				HistoryDays: cfg.Dashboard.HistoryDays,
				TopClients:  cfg.Dashboard.TopClients,
			}, log)
			uc := export.NewUseCase(repos, reports, infrapdf.NewReportGenerator(cfg.App.Name))

			filename, body, err := runExport(ctx, c, uc, store)
			if err != nil {
				return err
			}
			path := filepath.Join(c.String("out"), filename)
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			log.Info().Str("file", path).Int("bytes", len(body)).Msg("exportación escrita")
			return nil
		},
	}
}

func runExport(ctx context.Context, c *cli.Context, uc *export.UseCase, store *dashboard.Store) (string, []byte, error) {
	var (
		filename string
		csv      string
		err      error
	)
	switch kind := c.String("kind"); kind {
	case "production":
		filename = export.ProductionFilename
		csv, err = uc.ProductionCSV(ctx)
	case "shipments":
		filename = export.ShipmentsFilename
		csv, err = uc.ShipmentsCSV(ctx)
	case "report":
		if err := store.Refresh(ctx); err != nil {
			return "", nil, err
		}
		var f dashboard.ReportFilter
		if c.IsSet("month") && c.IsSet("year") {
			month, year := c.Int("month"), c.Int("year")
			f = dashboard.ReportFilter{Month: &month, Year: &year}
		}
		pdf, err := uc.ReportPDF(ctx, f)
		return export.ReportFilename, pdf, err
	default:
		return "", nil, fmt.Errorf("kind desconocido %q", kind)
	}
	if err != nil {
		return "", nil, err
	}
	if c.Bool("windows1252") {
		body, err := tabular.EncodeWindows1252(csv)
		return filename, body, err
	}
	return filename, []byte(csv), nil
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "emite un token HS256 para un operador",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operator", Required: true},
			&cli.IntFlag{Name: "minutes", Usage: "vigencia; por defecto AUTH_JWT_EXPIRATION_MINUTES"},
		},
		Action: func(c *cli.Context) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return fmt.Errorf("AUTH_JWT_SECRET no está configurado")
			}
			minutes := cfg.Auth.Expiration
			if c.IsSet("minutes") {
				minutes = c.Int("minutes")
			}
			tok, err := jwt.Generate(cfg.Auth.Secret, c.String("operator"), cfg.Auth.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, tok)
			return nil
		},
	}
}
