package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/apetitox-inventario/docs"
	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	infrapdf "github.com/jhoicas/apetitox-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/apetitox-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/apetitox-inventario/internal/interfaces/http"
	"github.com/jhoicas/apetitox-inventario/pkg/config"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// @title						ApetitoX Inventario API
// @version					1.0
// @description				Ledger de inventario y producción: ingresos, lotes, stock y kardex.
// @BasePath					/
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Cantidades y costos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Strs("versions", applied).Msg("migraciones al día")
	}

	txRunner := postgres.NewTxRunner(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)

	receiveUC := inventory.NewReceiveMaterialUseCase(txRunner)
	batchUC := inventory.NewRegisterBatchUseCase(txRunner)

	// PDF: kardex con saldo corrido
	pdfGenerator := infrapdf.NewMarotoKardexGenerator()
	queryUC := inventory.NewQueryUseCase(materialRepo, movementRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ApetitoX Inventario API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		Receiver: receiveUC,
		Batches:  batchUC,
		Query:    queryUC,
		DB:       pool,
		Log:      log,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
