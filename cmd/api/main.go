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
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
	infrapdf "github.com/tu-usuario/resto-backoffice/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/resto-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/resto-backoffice/pkg/config"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando servicio de datos")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	inventoryRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	changeLogRepo := postgres.NewChangeLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: representación gráfica del pedido de compra para el proveedor
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()

	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, changeLogRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, supplierRepo, txRunner, pdfGenerator)
	changeLogUC := usecase.NewChangeLogUseCase(changeLogRepo)

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
		Title:    "Resto Back-Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		SupplierUC:  supplierUC,
		OrderUC:     orderUC,
		ChangeLogUC: changeLogUC,
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

	log.Info().Msg("servicio detenido")
}
