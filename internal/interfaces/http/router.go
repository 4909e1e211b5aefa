package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apetitox-inventario/internal/application/dto"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Receiver MaterialReceiver
	Batches  BatchRegistrar
	Query    LedgerQuerier
	DB       Pinger
	Log      *logger.Logger
}

// Router registra las rutas del ledger. No hay autenticación: user_id llega en el body.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})
	app.Get("/health/db", func(c *fiber.Ctx) error {
		if deps.DB == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "sin base de datos"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := deps.DB.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: err.Error()})
		}
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	inventoryHandler := NewInventoryHandler(deps.Receiver, deps.Query, deps.Log)
	inv := app.Group("/inventory")
	inv.Post("/ingreso", inventoryHandler.Ingreso)
	inv.Get("/stock", inventoryHandler.Stock)

	productionHandler := NewProductionHandler(deps.Batches, deps.Log)
	app.Group("/production").Post("/lote", productionHandler.Lote)

	reportHandler := NewReportHandler(deps.Query, deps.Log)
	reports := app.Group("/reports")
	reports.Get("/kardex", reportHandler.Kardex)
	reports.Get("/kardex/pdf", reportHandler.KardexPDF)
}
