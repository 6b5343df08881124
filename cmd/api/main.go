package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/entries"
	"github.com/jhoicas/Produccion-api/internal/application/export"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Bool("auth", cfg.Auth.Enabled()).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
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
	settings := dashboard.Settings{
		HistoryDays: cfg.Dashboard.HistoryDays,
		TopClients:  cfg.Dashboard.TopClients,
	}

	store := dashboard.NewStore(
		dashboard.NewLoader(repos, clock, cfg.Dashboard.TrailingMonths),
		log.Named("snapshot"),
	)
	// Sin datos iniciales el servidor arranca igual: las vistas responden 503 hasta la
	// primera recarga exitosa.
	if err := store.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del tablero")
	}
	go func() {
		listener := postgres.NewChangeListener(pool, log.Named("listener"))
		if err := store.Watch(ctx, listener); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("escucha de cambios finalizada")
		}
	}()

	reportUC := dashboard.NewReportUseCase(store, clock, settings, log.Named("reports"))
	entriesUC := entries.NewUseCase(repos.Production, repos.Shipments, store, log.Named("entries"))
	exportUC := export.NewUseCase(repos, reportUC, infrapdf.NewReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Producción API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		Store:      store,
		SummaryUC:  dashboard.NewSummaryUseCase(store, clock, settings, log.Named("summary")),
		ReportUC:   reportUC,
		CalendarUC: dashboard.NewCalendarUseCase(store, clock),
		CatalogUC:  dashboard.NewCatalogUseCase(store),
		EntriesUC:  entriesUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.Auth.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
